package store

import (
	"github.com/padraicbc/biathlonpicks/importer"
	"github.com/padraicbc/biathlonpicks/resolution"
	"github.com/padraicbc/biathlonpicks/selection"
)

var (
	_ resolution.Store = (*Store)(nil)
	_ selection.Store  = (*Store)(nil)
	_ importer.Store   = (*Store)(nil)
)
