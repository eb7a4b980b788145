package debugs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tapec/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
