package leveldata

import (
	"os"
	"testing"

	"github.com/automoto/tilebrawl/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}
