package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Convert bool
	Patch   bool
	Query   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JSTP_DEBUG_PARSE")
	d.Convert = boolEnv("JSTP_DEBUG_CONVERT")
	d.Patch = boolEnv("JSTP_DEBUG_PATCH")
	d.Query = boolEnv("JSTP_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Convert() bool {
	return d.Convert
}
func Patch() bool {
	return d.Patch
}
func Query() bool {
	return d.Query
}
