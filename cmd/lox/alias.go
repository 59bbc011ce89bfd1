package main

import (
	"errors"

	"github.com/reusee/e5"
	"github.com/reusee/lox/lox"
)

var (
	ce = e5.Check
	he = e5.Handle
)

const (
	exitUsage   = 64
	exitStatic  = 65
	exitNoInput = 66
	exitRuntime = 70
)

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var runtimeErr *lox.RuntimeError
	if errors.As(err, &runtimeErr) {
		return exitRuntime
	}
	var scanErr *lox.ScanError
	var parseErr *lox.ParseError
	if errors.As(err, &scanErr) || errors.As(err, &parseErr) {
		return exitStatic
	}
	return exitNoInput
}
