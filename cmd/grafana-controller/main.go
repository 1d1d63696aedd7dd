// Command grafana-controller runs the GrafanaAlert reconciliation loop: it
// mirrors alert rules, notification policy, mute timings, and notification
// templates into a remote Grafana provisioning API.
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
	"github.com/zengarden-space/homelab-operators/internal/grafana"
	"github.com/zengarden-space/homelab-operators/internal/metrics"
)

const controllerName = "grafana-controller"

var (
	scheme   = runtime.NewScheme()
	setupLog = ctrl.Log.WithName("setup")
)

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(zv1.AddToScheme(scheme))
	utilruntime.Must(zv1.AddMonitoringToScheme(scheme))
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

	reconciler := &grafana.Reconciler{
		Gateway: gw,
		Log:     ctrl.Log.WithName("grafana"),
	}

	eng := &engine.Engine{
		Name:                       controllerName,
		SharedDir:                  sharedDir,
		PollInterval:               1 * time.Second,
		DeleteRequestAfterResponse: true,
		Log:                        ctrl.Log.WithName("engine"),
		Handlers:                   reconciler.Handlers(),
		OnSynchronization:          reconciler.ReconcileAll,
		RecordDispatch: func(kind, result string) { metrics.RecordReconciliation(controllerName, kind, result) },
		RecordDuration: func(kind string, seconds float64) { metrics.ObserveReconciliationDuration(controllerName, kind, seconds) },
	}

	setupLog.Info("starting grafana-controller", "sharedDir", sharedDir)
	if err := eng.Run(ctrl.SetupSignalHandler()); err != nil {
		setupLog.Error(err, "engine stopped with error")
		os.Exit(1)
	}
}
