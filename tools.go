//go:build tools

// This file pins gogio, which packages giocalc for Android, iOS and the web:
//
//	go run gioui.org/cmd/gogio -target android ./giocalc
package tools

import _ "gioui.org/cmd/gogio"
