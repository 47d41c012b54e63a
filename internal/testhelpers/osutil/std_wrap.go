package osutil

import (
	"io/ioutil"
	"os"

	"github.com/fatih/color"
	colorable "github.com/mattn/go-colorable"
)

func replaceStdout(newOut *os.File) *os.File {
	oldOut := os.Stdout
	os.Stdout = newOut
	return oldOut
}

func replaceStderr(newErr *os.File) *os.File {
	oldErr := os.Stderr
	os.Stderr = newErr
	return oldErr
}

// CaptureStdout will execute a provided function and capture anything written to stdout.
// It will then return that output as a string along with any errors captured in the process.
func CaptureStdout(fnToExec func()) (string, error) {
	outReader, tmpOut, err := os.Pipe()
	if err != nil {
		return "", err
	}
	defer replaceStdout(replaceStdout(tmpOut))

	// Redefine output used for color printing, otherwise these won't be captured
	color.Output = colorable.NewColorableStdout()

	fnToExec() // execute the provided function

	if err = tmpOut.Close(); err != nil {
		return "", err
	}

	outBytes, err := ioutil.ReadAll(outReader)
	outStr := string(outBytes)
	if err != nil {
		err = outReader.Close()
	}
	return outStr, err
}

// CaptureStderr will execute a provided function and capture anything written to stderr.
func CaptureStderr(fnToExec func()) (string, error) {
	errReader, tmpErr, err := os.Pipe()
	if err != nil {
		return "", err
	}
	defer replaceStderr(replaceStderr(tmpErr))

	fnToExec() // execute the provided function

	if err = tmpErr.Close(); err != nil {
		return "", err
	}

	errBytes, err := ioutil.ReadAll(errReader)
	errStr := string(errBytes)
	if err != nil {
		err = errReader.Close()
	}
	return errStr, err
}
