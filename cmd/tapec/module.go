package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tapec/compilers"
	"github.com/reusee/tapec/debugs"
	"github.com/reusee/tapec/translates"
)

type Module struct {
	dscope.Module
	Translates translates.Module
	Compilers  compilers.Module
	Debugs     debugs.Module
}
