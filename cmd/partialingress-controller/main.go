// Command partialingress-controller runs the PartialIngress reconciliation
// loop: it composes per-environment Ingress objects by replicating base
// ingresses under new hostnames, subtracting overridden paths.
package main

import (
	"flag"
	"os"
	"time"

	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	zv1 "github.com/zengarden-space/homelab-operators/apis/zengarden/v1"
	"github.com/zengarden-space/homelab-operators/internal/config"
	"github.com/zengarden-space/homelab-operators/internal/engine"
	"github.com/zengarden-space/homelab-operators/internal/gateway"
	"github.com/zengarden-space/homelab-operators/internal/metrics"
	"github.com/zengarden-space/homelab-operators/internal/partialingress"
)

const controllerName = "partialingress-controller"

var (
	scheme   = runtime.NewScheme()
	setupLog = ctrl.Log.WithName("setup")
)

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(zv1.AddToScheme(scheme))
}

func main() {
	var sharedDir string

	flag.StringVar(&sharedDir, "shared-dir", config.GetEnv("SHARED_DIR", "/shared"), "Directory the dispatcher drops request files into.")

	opts := zap.Options{Development: true}
	opts.BindFlags(flag.CommandLine)
	flag.Parse()

	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&opts)))

	c, err := client.New(ctrl.GetConfigOrDie(), client.Options{Scheme: scheme})
	if err != nil {
		setupLog.Error(err, "unable to build kubernetes client")
		os.Exit(1)
	}
	gw := gateway.New(c, scheme)

	reconciler := &partialingress.Reconciler{
		Gateway: gw,
		Log:     ctrl.Log.WithName("partialingress"),
	}

	eng := &engine.Engine{
		Name:           controllerName,
		SharedDir:      sharedDir,
		PollInterval:   200 * time.Millisecond,
		Log:            ctrl.Log.WithName("engine"),
		Handlers:       reconciler.Handlers(),
		RecordDispatch: func(kind, result string) { metrics.RecordReconciliation(controllerName, kind, result) },
		RecordDuration: func(kind string, seconds float64) { metrics.ObserveReconciliationDuration(controllerName, kind, seconds) },
	}

	setupLog.Info("starting partialingress-controller", "sharedDir", sharedDir)
	if err := eng.Run(ctrl.SetupSignalHandler()); err != nil {
		setupLog.Error(err, "engine stopped with error")
		os.Exit(1)
	}
}
