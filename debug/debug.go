package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Plan    bool
	Exec    bool
	Overlay bool
}

var d *debug

func init() {
	d = &debug{}
	d.Plan = boolEnv("XMLGEN_DEBUG_PLAN")
	d.Exec = boolEnv("XMLGEN_DEBUG_EXEC")
	d.Overlay = boolEnv("XMLGEN_DEBUG_OVERLAY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Plan reports whether procedure plans are traced while generating.
func Plan() bool {
	return d.Plan
}

// Exec reports whether procedure execution is traced.
func Exec() bool {
	return d.Exec
}

// Overlay reports whether patched model documents are dumped.
func Overlay() bool {
	return d.Overlay
}
