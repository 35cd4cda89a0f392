// Package app 应用装配与生命周期管理
//
// 🎯 **模块职责**
// - 通过fx依赖注入装配全部组件
// - 一次性命令（init/advance/state）与常驻服务（serve）共用同一套装配
// - 启动时校验赛季表一致性
package app

import (
	"context"
	"time"

	"go.uber.org/fx"

	trackerclient "github.com/fbtracker/v1/client/core/tracker"
	httpapi "github.com/fbtracker/v1/internal/api/http"
	"github.com/fbtracker/v1/internal/api/http/handlers"
	"github.com/fbtracker/v1/internal/config"
	apiconfig "github.com/fbtracker/v1/internal/config/api"
	trackerconfig "github.com/fbtracker/v1/internal/config/tracker"
	"github.com/fbtracker/v1/internal/core/infrastructure/event"
	corelog "github.com/fbtracker/v1/internal/core/infrastructure/log"
	"github.com/fbtracker/v1/internal/core/infrastructure/metrics"
	badgerstore "github.com/fbtracker/v1/internal/core/infrastructure/storage/badger"
	"github.com/fbtracker/v1/internal/core/runtime"
	"github.com/fbtracker/v1/internal/core/tracker/ledger"
	"github.com/fbtracker/v1/internal/core/tracker/pda"
	"github.com/fbtracker/v1/internal/core/tracker/processor"
	eventif "github.com/fbtracker/v1/pkg/interfaces/infrastructure/event"
	logif "github.com/fbtracker/v1/pkg/interfaces/infrastructure/log"
	storageif "github.com/fbtracker/v1/pkg/interfaces/infrastructure/storage"
	rtif "github.com/fbtracker/v1/pkg/interfaces/runtime"
)

// startStopTimeout fx启动/关闭超时
const startStopTimeout = 30 * time.Second

// ConfigPath 配置文件路径（fx注入用包装类型）
type ConfigPath string

// Toolkit 命令执行所需的组件集合
type Toolkit struct {
	fx.In

	Logger  logif.Logger
	Client  *trackerclient.Client
	Host    *runtime.Host
	Tracker *trackerconfig.Config
	Bus     eventif.Bus
}

// buildOptions 装配全部组件
func buildOptions(configPath string) fx.Option {
	return fx.Options(
		fx.NopLogger,
		fx.Supply(ConfigPath(configPath)),
		fx.Provide(
			newAppConfig,
			newLogger,
			newAPIConfig,
			newStore,
			newBus,
			metrics.NewRegistry,
			newDeriver,
			newTrackerConfig,
			newProgram,
			newHost,
			newHostInterface,
			newClient,
			newHandler,
			httpapi.NewServer,
		),
		// 赛季表随代码发布，启动即校验
		fx.Invoke(func(logger logif.Logger) error {
			if err := ledger.Verify(); err != nil {
				logger.Errorf("赛季表校验失败: %v", err)
				return err
			}
			logger.Debugf("赛季表校验通过: %d个赛季", ledger.Count())
			return nil
		}),
	)
}

func newAppConfig(path ConfigPath) (*config.Provider, error) {
	appConfig, err := config.LoadFromFile(string(path))
	if err != nil {
		return nil, err
	}
	return config.NewProvider(appConfig), nil
}

func newLogger(provider *config.Provider) (logif.Logger, error) {
	logger, err := corelog.New(provider.GetLog())
	if err != nil {
		return nil, err
	}
	corelog.SetLogger(logger)
	return logger, nil
}

func newStore(lc fx.Lifecycle, provider *config.Provider, logger logif.Logger) (storageif.BadgerStore, error) {
	store, err := badgerstore.New(provider.GetBadger(), logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})
	return store, nil
}

func newBus(lc fx.Lifecycle, logger logif.Logger) eventif.Bus {
	bus := event.New(logger)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			bus.Close()
			return nil
		},
	})
	return bus
}

func newAPIConfig(provider *config.Provider) *apiconfig.Config {
	return provider.GetAPI()
}

func newDeriver() rtif.AddressDeriver {
	return pda.NewDeriver()
}

func newTrackerConfig(provider *config.Provider) (*trackerconfig.Config, error) {
	return provider.GetTracker()
}

func newProgram(deriver rtif.AddressDeriver, logger logif.Logger) rtif.Program {
	return processor.New(deriver, logger)
}

func newHost(
	trackerCfg *trackerconfig.Config,
	program rtif.Program,
	deriver rtif.AddressDeriver,
	store storageif.BadgerStore,
	bus eventif.Bus,
	reg *metrics.Registry,
	logger logif.Logger,
) *runtime.Host {
	return runtime.New(trackerCfg.GetProgramID(), program, deriver, store, bus, reg, logger)
}

func newHostInterface(host *runtime.Host) rtif.Host {
	return host
}

func newClient(
	host rtif.Host,
	deriver rtif.AddressDeriver,
	trackerCfg *trackerconfig.Config,
	logger logif.Logger,
) *trackerclient.Client {
	return trackerclient.NewClient(host, deriver, trackerCfg.GetProgramID(), logger)
}

func newHandler(
	host rtif.Host,
	deriver rtif.AddressDeriver,
	trackerCfg *trackerconfig.Config,
	logger logif.Logger,
) *handlers.TrackerHandler {
	return handlers.NewTrackerHandler(host, deriver, trackerCfg.GetProgramID(), logger)
}

// Execute 装配组件并执行一次性命令
//
// fn返回后组件按相反顺序关闭（存储落盘、总线停止）。
func Execute(configPath string, fn func(*Toolkit) error) error {
	var toolkit Toolkit
	fxApp := fx.New(
		buildOptions(configPath),
		fx.Populate(&toolkit),
		fx.StartTimeout(startStopTimeout),
		fx.StopTimeout(startStopTimeout),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), startStopTimeout)
	defer cancel()
	if err := fxApp.Start(startCtx); err != nil {
		return err
	}

	runErr := fn(&toolkit)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), startStopTimeout)
	defer cancelStop()
	if err := fxApp.Stop(stopCtx); err != nil && runErr == nil {
		return err
	}
	return runErr
}

// Serve 装配组件并常驻运行HTTP读取API
func Serve(configPath string) error {
	fxApp := fx.New(
		buildOptions(configPath),
		fx.Invoke(func(lc fx.Lifecycle, server *httpapi.Server) {
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					return server.Start()
				},
				OnStop: func(ctx context.Context) error {
					return server.Stop(ctx)
				},
			})
		}),
		fx.StartTimeout(startStopTimeout),
		fx.StopTimeout(startStopTimeout),
	)

	fxApp.Run()
	return nil
}
