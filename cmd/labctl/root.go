package main

import (
	"context"
	"errors"
	"io"
	"medilabx-service/internal/app/config"
	"medilabx-service/internal/app/contracts"
	"medilabx-service/internal/app/drivers/logger"
	"medilabx-service/internal/app/services/core/packages"
	"medilabx-service/internal/app/services/core/reports"
	"medilabx-service/internal/app/services/core/samples"
	"medilabx-service/internal/app/services/core/session"
	"medilabx-service/internal/app/services/labapi"
	authApi "medilabx-service/internal/app/services/labapi/auth"
	bookingApi "medilabx-service/internal/app/services/labapi/bookings"
	reportApi "medilabx-service/internal/app/services/labapi/reports"
	testApi "medilabx-service/internal/app/services/labapi/tests"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/utils"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errReported marks a failure that was already printed to the operator.
var errReported = errors.New("reported")

type cli struct {
	apiURL    string
	tokenFile string
	logLevel  string
	timeout   time.Duration
	out       io.Writer

	internalConfig *config.InternalConfig
	log            *zap.Logger
	store          *session.FileStore
	sessions       contracts.SessionUsecase
	samples        contracts.SampleUsecase
	reports        contracts.ReportUsecase
	packages       contracts.PackageUsecase
}

func newRootCommand(out io.Writer) *cobra.Command {
	c := &cli{
		out:            out,
		internalConfig: config.NewInternalConfig(),
	}

	root := &cobra.Command{
		Use:   "labctl",
		Short: "Drive the MediLabX sample board from a terminal",
		Long: `labctl talks to the MediLabX lab backend directly. It lists samples per
status tab, moves bookings through the lab lifecycle, enters test reports and
computes package savings.

Log in once with "labctl login"; the token is kept in the token file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
	}

	root.PersistentFlags().StringVar(&c.apiURL, "api-url", c.internalConfig.LabAPI.BaseUrl,
		"lab backend base URL")
	root.PersistentFlags().StringVar(&c.tokenFile, "token-file", "",
		"session file (default: <user config dir>/medilabx/session.json)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn",
		"log level written to stderr")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", c.internalConfig.LabAPI.RequestTimeout(),
		"timeout of a single lab backend call")

	root.AddCommand(
		c.loginCommand(),
		c.logoutCommand(),
		c.whoamiCommand(),
		c.samplesCommand(),
		c.bookCommand(),
		c.reportCommand(),
		c.packageCommand(),
	)
	return root
}

func (c *cli) setup() error {
	if c.tokenFile == "" {
		path, err := session.DefaultTokenFile()
		if err != nil {
			return err
		}
		c.tokenFile = path
	}

	c.log = logger.NewConsoleLogger(c.logLevel)
	c.store = session.NewFileStore(c.tokenFile)

	requester := labapi.NewRequester(c.apiURL, c.timeout, session.ContextTokenSource{Fallback: c.store}, c.log)
	bookingApiClient := bookingApi.NewBookingApiClient(requester, c.log)

	c.sessions = session.NewSessionUsecase(
		authApi.NewAuthApiClient(requester, c.log),
		c.store,
		c.internalConfig.Session.DefaultTTL(),
		c.log,
	)
	c.samples = samples.NewSampleUsecase(bookingApiClient, nil, c.log)
	c.reports = reports.NewReportUsecase(
		bookingApiClient,
		reportApi.NewReportApiClient(requester, c.log),
		testApi.NewTestApiClient(requester, c.log),
		nil,
		c.log,
	)
	c.packages = packages.NewPackageUsecase(c.log)
	return nil
}

// requestContext carries a fresh request id so backend calls of one command share it
// in the logs.
func (c *cli) requestContext(cmd *cobra.Command) context.Context {
	return context.WithValue(cmd.Context(), constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())
}
