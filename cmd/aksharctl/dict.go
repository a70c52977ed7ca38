package main

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
)

// appName names the subdirectory under the user's config home that holds
// the dictionary file, per spec.md §6 ("Default dictionary path").
const appName = "akshar-ime"

// dictionaryFile is the default snapshot filename within appName's config
// directory.
const dictionaryFile = "user_dictionary.bin"

// resolveDictPath returns the --dict flag's value if set, otherwise the
// default path under xdg.ConfigHome, mirroring the Rust prototype's
// dirs::data_local_dir() + "nepali-smart-ime/user_dictionary.bin" in
// original_source/src/c_api.rs. Path discovery is entirely a host-layer
// concern; engine.Open never computes a path itself.
func resolveDictPath(cmd *cobra.Command) string {
	explicit, _ := cmd.Flags().GetString("dict")
	if explicit != "" {
		return explicit
	}
	return filepath.Join(xdg.ConfigHome, appName, dictionaryFile)
}
