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

package tokens

// the keyword tables. the Blocked category contains keywords that the
// interpreter reserves but does not implement. they are tokenized so that
// programs containing them load, even though they will not run.
//
// glyph passthrough entries are added to the String category during init().

var system = []Entry{
	{Keyword: "CLS", Code: 0x84},
	{Keyword: "RUN", Code: 0x8e},
	{Keyword: "VERIFY", Code: 0x98},
	{Keyword: "CRUN", Code: 0x9c},
	{Keyword: "LIST", Code: 0xb4},
	{Keyword: "CLOAD", Code: 0xb9},
	{Keyword: "CSAVE", Code: 0xba},
	{Keyword: "NEW", Code: 0xbb},
}

var control = []Entry{
	{Keyword: "END", Code: 0x80},
	{Keyword: "FOR", Code: 0x81},
	{Keyword: "NEXT", Code: 0x87},
	{Keyword: "GOTO", Code: 0x8d},
	{Keyword: "IF", Code: 0x8f},
	{Keyword: "GOSUB", Code: 0x91},
	{Keyword: "RETURN", Code: 0x92},
	{Keyword: "STOP", Code: 0x94},
	{Keyword: "ELSE", Code: 0x95},
	{Keyword: "CONT", Code: 0xb3},
	{Keyword: "TO", Code: 0xbd},
	{Keyword: "THEN", Code: 0xca},
	{Keyword: "STEP", Code: 0xcc},
}

var inout = []Entry{
	{Keyword: "DATA", Code: 0x88},
	{Keyword: "INPUT", Code: 0x89},
	{Keyword: "READ", Code: 0x8b},
	{Keyword: "RESTORE", Code: 0x90},
	{Keyword: "OUT", Code: 0xa0},
	{Keyword: "PRINT", Code: 0xb2},
	{Keyword: "INP", Code: 0xdb},
}

var printer = []Entry{
	{Keyword: "COPY", Code: 0x96},
	{Keyword: "LPRINT", Code: 0xaf},
	{Keyword: "LLIST", Code: 0xb5},
}

var memory = []Entry{
	{Keyword: "POKE", Code: 0xb1},
	{Keyword: "CLEAR", Code: 0xb8},
	{Keyword: "USR", Code: 0xc1},
	{Keyword: "PEEK", Code: 0xe5},
}

var media = []Entry{
	{Keyword: "RESET", Code: 0x82},
	{Keyword: "SET", Code: 0x83},
	{Keyword: "COLOR", Code: 0x97},
	{Keyword: "MODE", Code: 0x9d},
	{Keyword: "SOUND", Code: 0x9e},
	{Keyword: "POINT", Code: 0xc6},
}

var variables = []Entry{
	{Keyword: "DIM", Code: 0x8a},
	{Keyword: "LET", Code: 0x8c},
}

var operators = []Entry{
	{Keyword: "NOT", Code: 0xcb},
	{Keyword: "+", Code: 0xcd},
	{Keyword: "-", Code: 0xce},
	{Keyword: "*", Code: 0xcf},
	{Keyword: "/", Code: 0xd0},
	{Keyword: "↑", Code: 0xd1},
	{Keyword: "AND", Code: 0xd2},
	{Keyword: "OR", Code: 0xd3},
	{Keyword: ">", Code: 0xd4},
	{Keyword: "=", Code: 0xd5},
	{Keyword: "<", Code: 0xd6},
	{Keyword: "'", Code: 0xfb},
}

var maths = []Entry{
	{Keyword: "SGN", Code: 0xd7},
	{Keyword: "INT", Code: 0xd8},
	{Keyword: "ABS", Code: 0xd9},
	{Keyword: "SQR", Code: 0xdd},
	{Keyword: "RND", Code: 0xde},
	{Keyword: "LOG", Code: 0xdf},
	{Keyword: "EXP", Code: 0xe0},
	{Keyword: "COS", Code: 0xe1},
	{Keyword: "SIN", Code: 0xe2},
	{Keyword: "TAN", Code: 0xe3},
	{Keyword: "ATN", Code: 0xe4},
}

var strs = []Entry{
	{Keyword: "TAB(", Code: 0xbc},
	{Keyword: "USING", Code: 0xbf},
	{Keyword: "INKEY$", Code: 0xc9},
	{Keyword: "LEN", Code: 0xf3},
	{Keyword: "STR$", Code: 0xf4},
	{Keyword: "VAL", Code: 0xf5},
	{Keyword: "ASC", Code: 0xf6},
	{Keyword: "CHR$", Code: 0xf7},
	{Keyword: "LEFT$", Code: 0xf8},
	{Keyword: "RIGHT$", Code: 0xf9},
	{Keyword: "MID$", Code: 0xfa},
}

var blocked = []Entry{
	{Keyword: "CMD", Code: 0x85},
	{Keyword: "RANDOM", Code: 0x86},
	{Keyword: "DEFINT", Code: 0x99},
	{Keyword: "DEFSNG", Code: 0x9a},
	{Keyword: "DEFDBL", Code: 0x9b},
	{Keyword: "RESUME", Code: 0x9f},
	{Keyword: "ON", Code: 0xa1},
	{Keyword: "OPEN", Code: 0xa2},
	{Keyword: "FIELD", Code: 0xa3},
	{Keyword: "GET", Code: 0xa4},
	{Keyword: "PUT", Code: 0xa5},
	{Keyword: "CLOSE", Code: 0xa6},
	{Keyword: "LOAD", Code: 0xa7},
	{Keyword: "NAME", Code: 0xa9},
	{Keyword: "KILL", Code: 0xaa},
	{Keyword: "LSET", Code: 0xab},
	{Keyword: "RSET", Code: 0xac},
	{Keyword: "SAVE", Code: 0xad},
	{Keyword: "SYSTEM", Code: 0xae},
	{Keyword: "DEF", Code: 0xb0},
	{Keyword: "DELETE", Code: 0xb6},
	{Keyword: "AUTO", Code: 0xb7},
	{Keyword: "FN", Code: 0xbe},
	{Keyword: "VARPTR", Code: 0xc0},
	{Keyword: "ERL", Code: 0xc2},
	{Keyword: "ERR", Code: 0xc3},
	{Keyword: "STRING$", Code: 0xc4},
	{Keyword: "INSTR", Code: 0xc5},
	{Keyword: "TIME", Code: 0xc7},
	{Keyword: "MEM", Code: 0xc8},
	{Keyword: "FRE", Code: 0xda},
	{Keyword: "POS", Code: 0xdc},
	{Keyword: "CVI", Code: 0xe6},
	{Keyword: "CVS", Code: 0xe7},
	{Keyword: "CVD", Code: 0xe8},
	{Keyword: "EOF", Code: 0xe9},
	{Keyword: "LOC", Code: 0xea},
	{Keyword: "LOF", Code: 0xeb},
	{Keyword: "MKI$", Code: 0xec},
	{Keyword: "MKS$", Code: 0xed},
	{Keyword: "MKD$", Code: 0xee},
	{Keyword: "CINT", Code: 0xef},
	{Keyword: "CSNG", Code: 0xf0},
	{Keyword: "CDBL", Code: 0xf1},
	{Keyword: "FIX", Code: 0xf2},
}
