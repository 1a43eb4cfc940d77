//go:build tools

package xfs

import (
	_ "github.com/dmarkham/enumer"
)
