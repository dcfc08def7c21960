/*
flag Package set up cli flags shared across services

Usage:

	Flags listed in this package are shared across boundaries and service-agnostic
	For service dependent flags please define in their respective package
*/

package flag

import (
	"flag"
	"os"
	"strings"
)

const (
	APIServer = "api_server"
)

var (
	IsDevelopment bool
	ServiceName   string
	BypassAuth    bool
)

func init() {
	flag.BoolVar(&IsDevelopment, "dev", true, "set to true if the current run is for development. default value is true")
	flag.StringVar(&ServiceName, "service", APIServer, "name of the service to run")
	flag.BoolVar(&BypassAuth, "no_auth", false, "skip token verification, for local frontend development only")
	// Test binaries register their -test.* flags after package init runs, so
	// parsing here would reject them; defer to the testing framework's own
	// flag.Parse in that case. Flag vars already hold their defaults.
	for _, arg := range os.Args[1:] {
		if strings.HasPrefix(arg, "-test.") || strings.HasPrefix(arg, "--test.") {
			return
		}
	}
	flag.Parse()
}
