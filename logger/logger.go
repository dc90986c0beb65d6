package logger

import (
	"log"
	"os"
)

// ProgressLogger logs the main steps of the box tree construction.
var ProgressLogger = log.New(os.Stdout, "boxtree.progress: ", log.LstdFlags)

// WarningLogger emits a warning for each non fatal error, like unsupported
// display values or subtrees dropped by a permissive build.
var WarningLogger = log.New(os.Stdout, "boxtree.warning: ", log.Lmsgprefix)
