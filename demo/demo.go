// Package demo implements a small program that prints two values and
// calls three routines. Two of the routines exist only so that external
// dead-code tooling has something to strip; this package never strips
// anything itself.
package demo

import (
	"fmt"
	"io"
)

// The two values printed by Run.
const (
	GlobalVar1 = 100
	GlobalVar2 = 200
)

// Run writes the program's output to w. It stops at, and returns, the
// first write error.
func Run(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "global_var1 = %d, global_var2 = %d\n", GlobalVar1, GlobalVar2); err != nil {
		return err
	}
	if err := printStripped(w); err != nil {
		return err
	}
	if err := printKept(w); err != nil {
		return err
	}
	return printStrippedAgain(w)
}

func printStripped(w io.Writer) error {
	_, err := fmt.Fprintln(w, "This function should be stripped.")
	return err
}

func printKept(w io.Writer) error {
	_, err := fmt.Fprintln(w, "This function should remain.")
	return err
}

func printStrippedAgain(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Another function to be stripped.")
	return err
}
