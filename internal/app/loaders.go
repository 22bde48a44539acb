package app

import (
	"path/filepath"
	"strings"

	"github.com/specialistvlad/rectgrid/internal/config"
	"github.com/specialistvlad/rectgrid/internal/hcl"
	"github.com/specialistvlad/rectgrid/internal/textcfg"
	"github.com/specialistvlad/rectgrid/internal/yamlcfg"
)

// loaderFor picks the rule file format from the file extension. Anything
// that is neither HCL nor YAML is read as plain text.
func loaderFor(path string) config.Loader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return hcl.NewLoader()
	case ".yaml", ".yml":
		return yamlcfg.NewLoader()
	default:
		return textcfg.NewLoader()
	}
}
