package okerr_test

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/next-trace/scg-okerr/okerr"
)

func ExampleErr() {
	divide := func(a, b int) (int, error) {
		if b == 0 {
			return okerr.Err[int]("Cannot divide by zero")
		}

		return a / b, nil
	}

	fmt.Println(divide(10, 2))
	fmt.Println(divide(10, 0))
	// Output:
	// 5 <nil>
	// 0 Cannot divide by zero
}

func ExampleEnsure() {
	process := func(value int) (n int, err error) {
		defer okerr.Handle(&err)
		okerr.Ensure(value != 0, "value cannot be zero")

		return 100 / value, nil
	}

	fmt.Println(process(10))
	fmt.Println(process(0))
	// Output:
	// 10 <nil>
	// 0 value cannot be zero
}

func ExampleFromBoxed() {
	foreign := fmt.Errorf("failed to read config: %w", errors.New("file not found"))

	e := okerr.FromBoxed(foreign).Context("startup failed")
	fmt.Println(e)
	fmt.Println(e.Depth())
	fmt.Printf("%+v\n", e)
	// Output:
	// startup failed
	// 3
	// startup failed
	//
	// Caused by:
	//     0: failed to read config: file not found
	//     1: file not found
}

func ExampleWrapErr() {
	n, err := okerr.WrapErr(strconv.Atoi("12"))
	fmt.Println(n, err)

	_, err = okerr.WrapErr(strconv.Atoi("twelve"))
	fmt.Println(okerr.Context(err, "bad port").(*okerr.Error).Full())
	// Output:
	// 12 <nil>
	// bad port: strconv.Atoi: parsing "twelve": invalid syntax: invalid syntax
}
