package cmd

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// mustBindPFlag binds a command flag into viper so values can also arrive
// via XMLRECORD_* environment variables.
func mustBindPFlag(key string, f *pflag.Flag) {
	if err := viper.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("failed to bind flag %q: %v", key, err))
	}
}

func bindFlags(flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		mustBindPFlag(name, flags.Lookup(name))
	}
}
