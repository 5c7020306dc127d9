// linknxd is a Go port of linknx: it loads an XML configuration of group
// objects, I/O ports and schedule exceptions, keeps them live against a KNX
// group-address-shaped object model, persists objects marked init="persist"
// to SQLite, optionally republishes every value change to MQTT, and serves
// a read-only HTTP status view — spec.md §1.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stefdude/linknx/internal/config"
	"github.com/stefdude/linknx/internal/ioport"
	"github.com/stefdude/linknx/internal/logging"
	"github.com/stefdude/linknx/internal/mqttclient"
	"github.com/stefdude/linknx/internal/notify/mqttsink"
	"github.com/stefdude/linknx/internal/objects"
	"github.com/stefdude/linknx/internal/persistence"
	"github.com/stefdude/linknx/internal/scheduler"
	"github.com/stefdude/linknx/internal/statusapi"
)

// Version information, set at build time via ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const defaultConfigPath = "configs/linknxd.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	log := logging.Default()
	log.Info("starting linknxd", "version", version, "commit", commit, "build_date", date)

	daemonCfg, err := config.Load(getConfigPath())
	if err != nil {
		return fmt.Errorf("loading daemon config: %w", err)
	}

	log = logging.New(daemonCfg.Logging, version)
	log.Info("daemon config loaded", "config_file", daemonCfg.ConfigFile, "site", daemonCfg.Site.Name)

	loc, err := time.LoadLocation(daemonCfg.Site.Timezone)
	if err != nil {
		return fmt.Errorf("loading site timezone %q: %w", daemonCfg.Site.Timezone, err)
	}

	root, err := config.ImportFile(daemonCfg.ConfigFile)
	if err != nil {
		return fmt.Errorf("importing element config: %w", err)
	}

	ctl := objects.NewController()
	if err := ctl.ImportXML(root); err != nil {
		return fmt.Errorf("importing objects: %w", err)
	}
	log.Info("objects imported", "count", len(ctl.All()))

	exceptions := scheduler.NewExceptionDays()
	for _, e := range root.ChildrenByTag("exceptiondays") {
		exceptions.ImportXML(e)
	}
	sched := scheduler.NewManager(loc, exceptions)

	ports := ioport.NewRegistry()
	if err := ports.ImportXML(root.ChildrenByTag("ioport"), log); err != nil {
		return fmt.Errorf("importing I/O ports: %w", err)
	}
	defer func() {
		if closeErr := ports.Close(); closeErr != nil {
			log.Error("error closing I/O ports", "error", closeErr)
		}
	}()

	store, err := persistence.Open(persistence.Config{
		Path:        daemonCfg.Persistence.Path,
		WALMode:     daemonCfg.Persistence.WALMode,
		BusyTimeout: daemonCfg.Persistence.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening persistence store: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			log.Error("error closing persistence store", "error", closeErr)
		}
	}()
	persistence.Attach(ctx, ctl, store, log.Logger)
	log.Info("persistence attached", "path", daemonCfg.Persistence.Path)

	if daemonCfg.MQTT.Enabled {
		mqttClient, mqttErr := mqttclient.Connect(daemonCfg.MQTT, log)
		if mqttErr != nil {
			return fmt.Errorf("connecting to MQTT: %w", mqttErr)
		}
		defer func() {
			if closeErr := mqttClient.Close(); closeErr != nil {
				log.Error("error closing MQTT client", "error", closeErr)
			}
		}()
		log.Info("MQTT connected", "host", daemonCfg.MQTT.Host, "port", daemonCfg.MQTT.Port)

		sink := mqttsink.New(mqttClient, mqttsink.Config{
			TopicPrefix: daemonCfg.MQTT.Topic + "/object",
			QoS:         byte(daemonCfg.MQTT.QoS),
			Retained:    true,
		}, log)
		mqttsink.Attach(ctl, sink)
		log.Info("mqtt republishing attached", "topic_prefix", daemonCfg.MQTT.Topic+"/object")
	}

	go sched.Run(ctx)

	var statusSrv *statusapi.Server
	if daemonCfg.StatusAPI.Enabled {
		statusSrv, err = statusapi.New(statusapi.Config{
			Host: daemonCfg.StatusAPI.Host,
			Port: daemonCfg.StatusAPI.Port,
		}, statusapi.Deps{
			Logger:     log.Logger,
			Controller: ctl,
			Scheduler:  sched,
			Ports:      ports,
			Version:    version,
		})
		if err != nil {
			return fmt.Errorf("creating status api: %w", err)
		}
		if err := statusSrv.Start(ctx); err != nil {
			return fmt.Errorf("starting status api: %w", err)
		}
		defer func() {
			if closeErr := statusSrv.Close(); closeErr != nil {
				log.Error("error closing status api", "error", closeErr)
			}
		}()
		log.Info("status api listening", "host", daemonCfg.StatusAPI.Host, "port", daemonCfg.StatusAPI.Port)
	}

	log.Info("initialisation complete, waiting for shutdown signal")
	<-ctx.Done()
	log.Info("shutdown signal received, cleaning up")

	return nil
}

func getConfigPath() string {
	if path := os.Getenv("LINKNXD_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
