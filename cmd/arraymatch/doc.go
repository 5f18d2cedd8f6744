/*
Command arraymatch filters its standard input through a glob or a CSS-like
query selector. Each input line is one target: a path for glob, a JSON array
of objects for select.

Usage:

	arraymatch <command>

The arraymatch commands are:

	glob        Prints the input paths matching a glob
	select      Prints the input object paths matching a query selector
	help        Display help for commands or topics

Arraymatch glob

Prints the input paths, one per line, that match the glob.

	arraymatch glob [flags] <pattern>

	-invert=false       print the lines that do not match instead
	-no-prefilter=false disable the literal prefilter for segment globs
	-separator=/        path segment separator
	-verdict=false      print true or false for every line; implied on a terminal

Arraymatch select

Prints the input lines, each a JSON array of objects, whose objects match the
query.

	arraymatch select [flags] <query>...

	-class-field=classList object key holding the class list
	-id-field=id           object key holding the identity
	-invert=false          print the lines that do not match instead
	-tag-field=tagName     object key holding the tag name
	-verdict=false         print true or false for every line; implied on a terminal

Examples:

	$ git ls-files | arraymatch glob 'cmd/**'
	$ echo '[{"tagName":"ul"},{"tagName":"li","classList":["on"]}]' | arraymatch select 'ul>li.on'
*/
package main
