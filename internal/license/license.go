// Package license holds the GPL notices printed by the show subcommand.
package license

import "fmt"

// Notice is printed with the usage text.
const Notice = `Curator  Copyright (C) 2017  Anthony Defranceschi

This program comes with ABSOLUTELY NO WARRANTY; for details type ` + "`show w'" + `.
This is free software, and you are welcome to redistribute it
under certain conditions; type ` + "`show c'" + ` for details.`

// Warranty is shown by "show w".
const Warranty = `THERE IS NO WARRANTY FOR THE PROGRAM, TO THE EXTENT PERMITTED BY APPLICABLE LAW. ` +
	`EXCEPT WHEN OTHERWISE STATED IN WRITING THE COPYRIGHT HOLDERS AND/OR OTHER PARTIES PROVIDE THE PROGRAM ` +
	`"AS IS" WITHOUT WARRANTY OF ANY KIND, EITHER EXPRESSED OR IMPLIED, INCLUDING, BUT NOT LIMITED TO, ` +
	`THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE. THE ENTIRE RISK AS TO ` +
	`THE QUALITY AND PERFORMANCE OF THE PROGRAM IS WITH YOU. SHOULD THE PROGRAM PROVE DEFECTIVE, YOU ASSUME ` +
	`THE COST OF ALL NECESSARY SERVICING, REPAIR OR CORRECTION.`

// Conditions is shown by "show c".
const Conditions = `This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.`

// InvalidPartError is returned by Part for anything other than "w" or "c".
type InvalidPartError struct {
	Part string
}

func (e *InvalidPartError) Error() string {
	return fmt.Sprintf("You've typed: '%s'\nInvalid argument. Please read --help command result.", e.Part)
}

// Part returns the license text selected by "w" (warranty) or "c" (conditions).
func Part(part string) (string, error) {
	switch part {
	case "w":
		return Warranty, nil
	case "c":
		return Conditions, nil
	default:
		return "", &InvalidPartError{Part: part}
	}
}
