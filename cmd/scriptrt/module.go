package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/scriptrt/executors"
	"github.com/reusee/scriptrt/starunits"
)

type Module struct {
	dscope.Module
	Executors executors.Module
	StarUnits starunits.Module
}
