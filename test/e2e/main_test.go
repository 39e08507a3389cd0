package e2e

import (
	"flag"
	"os"
	"testing"

	"k8s.io/klog/v2"
)

func TestMain(m *testing.M) {
	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	_ = klogFlags.Set("v", os.Getenv("ROBOTTELO_LOG_VERBOSITY"))
	flag.Parse()

	os.Exit(m.Run())
}
