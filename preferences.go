// This file is part of Laser310.
//
// Laser310 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Laser310 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Laser310.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"github.com/jetsetilly/laser310/curated"
	"github.com/jetsetilly/laser310/paths"
	"github.com/jetsetilly/laser310/prefs"
	"github.com/jetsetilly/laser310/program"
	"github.com/jetsetilly/laser310/session"
	"github.com/jetsetilly/laser310/tokenizer"
)

// the name of the preferences file in the resource directory.
const prefsFile = "preferences"

type preferences struct {
	dsk *prefs.Disk

	startAddress prefs.Int
	rem          prefs.Int
	interval     prefs.Int

	logEcho     prefs.Bool
	printDigest prefs.Bool
}

func (p *preferences) String() string {
	return p.dsk.String()
}

// newPreferences creates the preferences with their default values and then
// loads any values saved to disk. values on the command line stack take
// precedence over values on disk.
func newPreferences() (*preferences, error) {
	p := &preferences{}

	p.startAddress.SetFormat("%#04x")
	p.startAddress.SetHookPre(func(v prefs.Value) error {
		a := v.(int)
		if a < program.MinStartAddress || a > program.MaxStartAddress {
			return curated.Errorf(program.InvalidAddress, a, program.MinStartAddress, program.MaxStartAddress)
		}
		return nil
	})

	p.rem.SetFormat("%#02x")
	p.rem.SetHookPre(func(v prefs.Value) error {
		_, err := tokenizer.NewRemCode(v.(int))
		return err
	})

	p.interval.SetHookPre(func(v prefs.Value) error {
		_, err := session.NewSession().SetInterval(v.(int))
		return err
	})

	if err := p.setDefaults(); err != nil {
		return nil, err
	}

	pth, err := paths.ResourcePath("", prefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	if err := p.dsk.Add("convert.startaddress", &p.startAddress); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	if err := p.dsk.Add("tokenizer.rem", &p.rem); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	if err := p.dsk.Add("session.interval", &p.interval); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	if err := p.dsk.Add("logger.echo", &p.logEcho); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	if err := p.dsk.Add("digest.print", &p.printDigest); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	if err := p.dsk.Load(); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	return p, nil
}

func (p *preferences) setDefaults() error {
	if err := p.startAddress.Set(program.DefaultStartAddress); err != nil {
		return err
	}
	if err := p.rem.Set(int(tokenizer.RemCanonical)); err != nil {
		return err
	}
	if err := p.interval.Set(session.DefaultInterval); err != nil {
		return err
	}
	if err := p.logEcho.Set(false); err != nil {
		return err
	}
	if err := p.printDigest.Set(false); err != nil {
		return err
	}
	return nil
}

// save preferences to disk.
func (p *preferences) save() error {
	if err := p.dsk.Save(); err != nil {
		return curated.Errorf("preferences: %v", err)
	}
	return nil
}

// remCode returns the REM code preference as a tokenizer.RemCode. the pre
// hook guarantees that the value is valid.
func (p *preferences) remCode() tokenizer.RemCode {
	r, _ := tokenizer.NewRemCode(p.rem.Get().(int))
	return r
}
