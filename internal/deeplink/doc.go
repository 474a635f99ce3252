// Package deeplink receives share links from outside the program (command
// line arguments, the OS URL handler, the import prompt) and stores the
// records they carry.
package deeplink
