package cmd

import "github.com/spf13/pflag"

// setStringFlagIfChanged copies a string flag's value into target, but only
// when the flag was set on the command line. Values coming from the
// configuration stay in place otherwise.
func setStringFlagIfChanged(flags *pflag.FlagSet, name string, target *string) error {
	if flags.Changed(name) {
		val, err := flags.GetString(name)
		if err != nil {
			return err
		}
		*target = val
	}
	return nil
}
