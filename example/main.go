// Package main demonstrates usage of the scg-okerr packages.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	pkgerrors "github.com/pkg/errors"

	"github.com/next-trace/scg-okerr/derive"
	"github.com/next-trace/scg-okerr/okerr"
	"github.com/next-trace/scg-okerr/report"
)

var ErrDivideBy = derive.Define("divide_by", "Cannot divide by %d")

func divide(a, b int) (int, error) {
	switch {
	case b == 0:
		return okerr.Err[int]("Cannot divide by zero")
	case b < 0:
		return okerr.Err[int](ErrDivideBy.New(b))
	default:
		return a / b, nil
	}
}

func parsePort(s string) (port int, err error) {
	defer okerr.Handle(&err)

	port = okerr.Try(strconv.Atoi(s))
	okerr.Ensure(port > 0 && port < 65536, "port %d out of range", port)

	return port, nil
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Construction
	fmt.Println(divide(10, 2))
	fmt.Println(divide(10, 0))

	if _, err := divide(10, -2); errors.Is(err, ErrDivideBy) {
		fmt.Printf("%v (%#v)\n", err, errors.Unwrap(err))
	}

	// Early return through Handle
	for _, s := range []string{"8080", "http", "70000"} {
		if _, err := parsePort(s); err != nil {
			logger.Error("bad port", report.Slog(okerr.Context(err, "parsing "+s)))
		}
	}

	// Errors from another ecosystem keep their message and chain
	foreign := pkgerrors.WithMessage(errors.New("file not found"), "failed to read config")
	e := okerr.FromBoxed(foreign).Context("startup failed")
	fmt.Printf("%+v\n", e)
	fmt.Println(e.Full())
}
