// Command sqldump2csv extracts user fields from a SQL dump into rotating
// CSV files named apteka_0.csv, apteka_1.csv, and so on in the current
// directory. Dump files are given as arguments; with no arguments the dump
// is read from standard input.
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/sqldump2csv"
)

// requiredFields maps each output column to the zero-based position of its
// value in a dump row group. The order here is the output column order.
var requiredFields = sqldump2csv.Schema{
	{Name: "LOGIN", Index: 2},
	{Name: "NAME", Index: 6},
	{Name: "LAST_NAME", Index: 7},
	{Name: "EMAIL", Index: 8},
	{Name: "PERSONAL_BIRTHDATE", Index: 16},
	{Name: "TIMESTAMP_X", Index: 1},
	{Name: "PERSONAL_PHONE", Index: 18},
	{Name: "PERSONAL_MOBILE", Index: 20},
	{Name: "PERSONAL_MAILBOX", Index: 23},
	{Name: "PERSONAL_CITY", Index: 24},
	{Name: "PERSONAL_STATE", Index: 25},
	{Name: "WORK_CITY", Index: 37},
	{Name: "PASSWORD", Index: 3},
	{Name: "CHECKWORD", Index: 4},
}

const (
	// outputPrefix names the generated files: <prefix>_<seq>.csv.
	outputPrefix = "apteka"
	// rowsPerFile is the row count at which output rotates to a new file.
	rowsPerFile = 10000
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("sqldump2csv: ")

	// With SIGPIPE ignored, a broken stderr pipe turns diagnostic writes
	// into EPIPE errors instead of killing the process.
	signal.Ignore(syscall.SIGPIPE)

	// An interrupt ends the run cleanly; rows already flushed stay on disk.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		os.Exit(0)
	}()

	conv, err := sqldump2csv.New(requiredFields, sqldump2csv.NewOptions().
		WithFilePrefix(outputPrefix).
		WithRowsPerFile(rowsPerFile))
	if err != nil {
		log.Fatal(err)
	}

	if err := conv.Convert(os.Args[1:]...); err != nil {
		log.Fatal(err)
	}
}
