// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// RuntimeVersion is this runtime's own version string, compared against
// the version a generated recognizer's code generator and grammar
// compilation step recorded.
const RuntimeVersion = "4.13.1"

// RuntimeMetaData.CheckVersion warns, rather than fails, a version
// mismatch: a generated recognizer built against a slightly different
// runtime usually still works, so the cost of being wrong should be a
// console line, not a panic.
type runtimeMetaData struct{}

// RuntimeMetaDataInstance is the conventional call site generated
// recognizers use: antlr.RuntimeMetaDataInstance.CheckVersion(...).
var RuntimeMetaDataInstance runtimeMetaData

// CheckVersion compares this runtime's version against the version the
// code generator targeted and the version present when the grammar was
// compiled. A patch or pre-release suffix difference is benign; a
// major.minor difference is not, and gets one line on standard error.
func (runtimeMetaData) CheckVersion(generatingToolVersion, compileTimeVersion string) {
	runtimeMajorMinor := majorMinor(RuntimeVersion)
	if generatingToolVersion != "" && majorMinor(generatingToolVersion) != runtimeMajorMinor {
		fmt.Fprintf(os.Stderr, "ANTLR Tool version %s used for code generation does not match the current runtime version %s\n",
			generatingToolVersion, RuntimeVersion)
	}
	if compileTimeVersion != "" && majorMinor(compileTimeVersion) != runtimeMajorMinor {
		fmt.Fprintf(os.Stderr, "ANTLR Runtime version %s used for parser compilation does not match the current runtime version %s\n",
			compileTimeVersion, RuntimeVersion)
	}
}

// majorMinor strips everything after the second dot-separated component,
// so "4.13.1" and "4.13.1-SNAPSHOT" both compare equal to "4.13".
func majorMinor(version string) string {
	parts := strings.SplitN(version, ".", 3)
	if len(parts) < 2 {
		return version
	}
	if _, err := strconv.Atoi(parts[0]); err != nil {
		return version
	}
	return parts[0] + "." + parts[1]
}
