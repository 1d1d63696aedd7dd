// Command derivedsecret-controller runs the DerivedSecret reconciliation
// loop: it watches a shared directory for dispatcher request files and
// materializes deterministically-derived Secrets from a master password.
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
	"github.com/zengarden-space/homelab-operators/internal/derivedsecret"
	"github.com/zengarden-space/homelab-operators/internal/engine"
	"github.com/zengarden-space/homelab-operators/internal/gateway"
	"github.com/zengarden-space/homelab-operators/internal/metrics"
)

const controllerName = "derivedsecret-controller"

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
	var masterPasswordPath string
	var defaultsPath string

	flag.StringVar(&sharedDir, "shared-dir", config.GetEnv("SHARED_DIR", "/shared"), "Directory the dispatcher drops request files into.")
	flag.StringVar(&masterPasswordPath, "master-password-path", config.GetEnv("MASTER_PASSWORD_PATH", config.DefaultMasterPasswordPath), "Path to the mounted master password file.")
	flag.StringVar(&defaultsPath, "defaults-path", config.GetEnv("DEFAULTS_PATH", ""), "Optional path to a static YAML defaults file.")

	opts := zap.Options{Development: true}
	opts.BindFlags(flag.CommandLine)
	flag.Parse()

	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&opts)))

	master, err := config.ReadMasterPassword(masterPasswordPath)
	if err != nil {
		setupLog.Error(err, "unable to read master password")
		os.Exit(1)
	}

	params := config.LoadArgon2Params()
	if defaultsPath != "" {
		if _, err := config.LoadDefaults(defaultsPath); err != nil {
			setupLog.Error(err, "unable to load static defaults")
			os.Exit(1)
		}
	}

	c, err := client.New(ctrl.GetConfigOrDie(), client.Options{Scheme: scheme})
	if err != nil {
		setupLog.Error(err, "unable to build kubernetes client")
		os.Exit(1)
	}
	gw := gateway.New(c, scheme)

	reconciler := &derivedsecret.Reconciler{
		Gateway: gw,
		Master:  master,
		Params:  params,
		Log:     ctrl.Log.WithName("derivedsecret"),
	}

	eng := &engine.Engine{
		Name:         controllerName,
		SharedDir:    sharedDir,
		PollInterval: 200 * time.Millisecond,
		Log:          ctrl.Log.WithName("engine"),
		Handlers: map[string]engine.Handler{
			"DerivedSecret": reconciler.Handler(),
		},
		RecordDispatch: func(kind, result string) { metrics.RecordReconciliation(controllerName, kind, result) },
		RecordDuration: func(kind string, seconds float64) { metrics.ObserveReconciliationDuration(controllerName, kind, seconds) },
	}

	setupLog.Info("starting derivedsecret-controller", "sharedDir", sharedDir)
	if err := eng.Run(ctrl.SetupSignalHandler()); err != nil {
		setupLog.Error(err, "engine stopped with error")
		os.Exit(1)
	}
}
