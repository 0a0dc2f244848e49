package cmd

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	logging "github.com/inconshreveable/log15"
	"github.com/mattn/go-isatty"
	"github.com/oklog/run"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/stellar/go/keypair"
	"golang.org/x/net/http2"

	"github.com/anunayjoshi29/ethvault/lib/common"
	"github.com/anunayjoshi29/ethvault/lib/governance"
	"github.com/anunayjoshi29/ethvault/lib/metrics"
	"github.com/anunayjoshi29/ethvault/lib/network"
	"github.com/anunayjoshi29/ethvault/lib/network/api"
	"github.com/anunayjoshi29/ethvault/lib/staking"
	"github.com/anunayjoshi29/ethvault/lib/storage"

	cmdcommon "github.com/anunayjoshi29/ethvault/cmd/ethvault/common"
)

const defaultNetwork string = "https"
const defaultPort int = 12345
const defaultHost string = "0.0.0.0"
const defaultLogLevel logging.Lvl = logging.LvlInfo

var (
	flagKPSecretSeed string = common.GetENVValue("ETHVAULT_SECRET_SEED", "")
	flagAdmin        string = common.GetENVValue("ETHVAULT_ADMIN", "")
	flagLogLevel     string = common.GetENVValue("ETHVAULT_LOG_LEVEL", defaultLogLevel.String())
	flagLogOutput    string = common.GetENVValue("ETHVAULT_LOG_OUTPUT", "")
	flagVerbose      bool   = common.GetENVValue("ETHVAULT_VERBOSE", "0") == "1"

	flagEndpointString string = common.GetENVValue(
		"ETHVAULT_ENDPOINT",
		fmt.Sprintf("%s://%s:%d", defaultNetwork, defaultHost, defaultPort),
	)
	flagStorageConfigString string
	flagTLSCertFile         string = common.GetENVValue("ETHVAULT_TLS_CERT", "ethvault.crt")
	flagTLSKeyFile          string = common.GetENVValue("ETHVAULT_TLS_KEY", "ethvault.key")

	flagVotingPeriod   string = common.GetENVValue("ETHVAULT_VOTING_PERIOD", "72h")
	flagExecutionDelay string = common.GetENVValue("ETHVAULT_EXECUTION_DELAY", "48h")
	flagQuorum         string = common.GetENVValue("ETHVAULT_QUORUM", (100 * common.WeightPerToken).String())
	flagRateLimitAPI   string = common.GetENVValue("ETHVAULT_RATE_LIMIT_API", "100-S")
	flagNTPHost        string = common.GetENVValue("ETHVAULT_NTP", common.DefaultNTPHost)
)

var (
	nodeCmd *cobra.Command

	kp             *keypair.Full
	nodeEndpoint   *common.Endpoint
	storageConfig  *storage.Config
	votingPeriod   time.Duration
	executionDelay time.Duration
	quorum         common.Weight
	rateLimitRule  common.RateLimitRule
	logLevel       logging.Lvl
	log            logging.Logger
)

func init() {
	var err error

	nodeCmd = &cobra.Command{
		Use:   "node",
		Short: "Run ethvault governance node",
		Run: func(c *cobra.Command, args []string) {
			parseFlagsNode()

			runNode()
			return
		},
	}

	// storage
	var currentDirectory string
	if currentDirectory, err = os.Getwd(); err != nil {
		cmdcommon.PrintFlagsError(nodeCmd, "--storage", err)
	}
	if currentDirectory, err = filepath.Abs(currentDirectory); err != nil {
		cmdcommon.PrintFlagsError(nodeCmd, "--storage", err)
	}
	flagStorageConfigString = common.GetENVValue("ETHVAULT_STORAGE", fmt.Sprintf("file://%s/db", currentDirectory))

	nodeCmd.Flags().StringVar(&flagKPSecretSeed, "secret-seed", flagKPSecretSeed, "secret seed of this node; its address is the governance address")
	nodeCmd.Flags().StringVar(&flagAdmin, "admin", flagAdmin, "admin public address")
	nodeCmd.Flags().StringVar(&flagLogLevel, "log-level", flagLogLevel, "log level, {crit, error, warn, info, debug}")
	nodeCmd.Flags().StringVar(&flagLogOutput, "log-output", flagLogOutput, "set log output file")
	nodeCmd.Flags().BoolVar(&flagVerbose, "verbose", flagVerbose, "verbose")
	nodeCmd.Flags().StringVar(&flagEndpointString, "endpoint", flagEndpointString, "endpoint uri to listen on ('https://0.0.0.0:12345')")
	nodeCmd.Flags().StringVar(&flagStorageConfigString, "storage", flagStorageConfigString, "storage uri")
	nodeCmd.Flags().StringVar(&flagTLSCertFile, "tls-cert", flagTLSCertFile, "tls certificate file")
	nodeCmd.Flags().StringVar(&flagTLSKeyFile, "tls-key", flagTLSKeyFile, "tls key file")
	nodeCmd.Flags().StringVar(&flagVotingPeriod, "voting-period", flagVotingPeriod, "genesis voting period")
	nodeCmd.Flags().StringVar(&flagExecutionDelay, "execution-delay", flagExecutionDelay, "genesis execution delay")
	nodeCmd.Flags().StringVar(&flagQuorum, "quorum", flagQuorum, "genesis quorum, in weight units")
	nodeCmd.Flags().StringVar(&flagRateLimitAPI, "rate-limit-api", flagRateLimitAPI, "rate limit for api: '<limit>-<period>', '100-S' ")
	nodeCmd.Flags().StringVar(&flagNTPHost, "ntp", flagNTPHost, "ntp server for the clock offset check; 'off' disables it")

	nodeCmd.MarkFlagRequired("secret-seed")
	nodeCmd.MarkFlagRequired("admin")

	rootCmd.AddCommand(nodeCmd)
}

func parseFlagsNode() {
	var err error

	var parsedKP keypair.KP
	parsedKP, err = keypair.Parse(flagKPSecretSeed)
	if err != nil {
		cmdcommon.PrintFlagsError(nodeCmd, "--secret-seed", err)
	} else {
		var ok bool
		if kp, ok = parsedKP.(*keypair.Full); !ok {
			cmdcommon.PrintFlagsError(nodeCmd, "--secret-seed", fmt.Errorf("not a secret seed"))
		}
	}

	if !common.IsValidAddress(flagAdmin) {
		cmdcommon.PrintFlagsError(nodeCmd, "--admin", fmt.Errorf("not a valid public address"))
	}

	if p, err := common.ParseEndpoint(flagEndpointString); err != nil {
		cmdcommon.PrintFlagsError(nodeCmd, "--endpoint", err)
	} else {
		nodeEndpoint = p
		flagEndpointString = nodeEndpoint.String()
	}

	if nodeEndpoint.Scheme == "https" {
		if _, err = os.Stat(flagTLSCertFile); os.IsNotExist(err) {
			cmdcommon.PrintFlagsError(nodeCmd, "--tls-cert", err)
		}
		if _, err = os.Stat(flagTLSKeyFile); os.IsNotExist(err) {
			cmdcommon.PrintFlagsError(nodeCmd, "--tls-key", err)
		}

		queries := nodeEndpoint.Query()
		queries.Add("TLSCertFile", flagTLSCertFile)
		queries.Add("TLSKeyFile", flagTLSKeyFile)
		nodeEndpoint.RawQuery = queries.Encode()
	}

	if storageConfig, err = storage.NewConfigFromString(flagStorageConfigString); err != nil {
		cmdcommon.PrintFlagsError(nodeCmd, "--storage", err)
	}

	if votingPeriod, err = time.ParseDuration(flagVotingPeriod); err != nil {
		cmdcommon.PrintFlagsError(nodeCmd, "--voting-period", err)
	}
	if executionDelay, err = time.ParseDuration(flagExecutionDelay); err != nil {
		cmdcommon.PrintFlagsError(nodeCmd, "--execution-delay", err)
	}
	if quorum, err = common.ParseWeight(flagQuorum); err != nil {
		cmdcommon.PrintFlagsError(nodeCmd, "--quorum", err)
	}

	rateLimitRule = common.NewRateLimitRule(common.RateLimitAPI)
	if err = common.ParseRateLimitRule(flagRateLimitAPI, &rateLimitRule); err != nil {
		cmdcommon.PrintFlagsError(nodeCmd, "--rate-limit-api", err)
	}

	if logLevel, err = logging.LvlFromString(flagLogLevel); err != nil {
		cmdcommon.PrintFlagsError(nodeCmd, "--log-level", err)
	}

	var logHandler logging.Handler

	var formatter logging.Format
	if isatty.IsTerminal(os.Stdout.Fd()) {
		formatter = logging.TerminalFormat()
	} else {
		formatter = common.JsonFormatEx(false, true)
	}
	logHandler = logging.StreamHandler(os.Stdout, formatter)

	if len(flagLogOutput) < 1 {
		flagLogOutput = "<stdout>"
	} else {
		if logHandler, err = logging.FileHandler(flagLogOutput, logging.JsonFormat()); err != nil {
			cmdcommon.PrintFlagsError(nodeCmd, "--log-output", err)
		}
	}

	log = logging.New("module", "main")
	log.SetHandler(logging.LvlFilterHandler(logLevel, logHandler))
	governance.SetLogging(logLevel, logHandler)
	network.SetLogging(logLevel, logHandler)
	api.SetLogging(logLevel, logHandler)

	log.Info("Starting ethvault")

	parsedFlags := []interface{}{}
	parsedFlags = append(parsedFlags, "\n\tendpoint", flagEndpointString)
	parsedFlags = append(parsedFlags, "\n\tstorage", flagStorageConfigString)
	parsedFlags = append(parsedFlags, "\n\tadmin", flagAdmin)
	parsedFlags = append(parsedFlags, "\n\tgovernance-address", kp.Address())
	parsedFlags = append(parsedFlags, "\n\tvoting-period", flagVotingPeriod)
	parsedFlags = append(parsedFlags, "\n\texecution-delay", flagExecutionDelay)
	parsedFlags = append(parsedFlags, "\n\tquorum", flagQuorum)
	parsedFlags = append(parsedFlags, "\n\tlog-level", flagLogLevel)
	parsedFlags = append(parsedFlags, "\n\tlog-output", flagLogOutput)

	log.Debug("parsed flags:", parsedFlags...)

	if flagVerbose {
		http2.VerboseLogs = true
	}
}

func runNode() {
	if flagNTPHost != "off" {
		if err := common.CheckClockOffset(flagNTPHost); err != nil {
			log.Warn("clock offset check failed", "error", errors.Wrap(err, flagNTPHost))
		}
	}

	metrics.InitPrometheusMetrics()
	metrics.SetVersion()

	st, err := storage.NewStorage(storageConfig)
	if err != nil {
		log.Crit("failed to initialize storage", "error", errors.Wrap(err, flagStorageConfigString))

		os.Exit(1)
	}

	conf := common.NewConfig(flagAdmin, kp.Address())
	conf.VotingPeriod = votingPeriod
	conf.ExecutionDelay = executionDelay
	conf.Quorum = quorum
	conf.RateLimitRuleAPI = rateLimitRule

	engine, err := governance.NewEngine(st, conf, staking.NewOracle(st), governance.NewTargetRegistry())
	if err != nil {
		log.Crit("failed to initialize governance engine", "error", err)

		os.Exit(1)
	}

	serverConfig, err := network.NewServerConfigFromEndpoint(nodeEndpoint)
	if err != nil {
		log.Crit("failed to configure the server", "error", errors.Wrap(err, flagEndpointString))

		os.Exit(1)
	}

	server := network.NewServer(serverConfig)

	server.AddMiddleware("", network.RecoverMiddleware(log))
	server.AddMiddleware(network.UrlPathPrefixAPI, network.RateLimitMiddleware(log, conf.RateLimitRuleAPI))
	server.AddMiddleware(network.UrlPathPrefixAPI, network.MetricsMiddleware())

	{ //CORS
		allowedOrigins := ghandlers.AllowedOrigins([]string{"*"})
		allowedMethods := ghandlers.AllowedMethods([]string{"GET", "POST"})
		allowedHeaders := ghandlers.AllowedHeaders([]string{"Content-Type", "X-Requested-With", "Cache-Control", "Access-Control"})

		cors := ghandlers.CORS(allowedOrigins, allowedMethods, allowedHeaders)
		server.AddMiddleware(network.UrlPathPrefixAPI, cors)
	}

	apiHandler := api.NewNetworkHandlerAPI(engine, st, network.UrlPathPrefixAPI)

	addAPI := func(pattern string, handler http.HandlerFunc) *mux.Route {
		return server.AddHandler(network.UrlPathPrefixAPI, "/"+api.APIVersionV1+pattern, handler)
	}

	addAPI(api.GetNodeInfoPattern, apiHandler.GetNodeInfoHandler).Methods("GET")
	addAPI(api.PostCleanupPattern, apiHandler.PostCleanupHandler).Methods("POST")
	addAPI(api.GetProposalsHandlerPattern, apiHandler.GetProposalsHandler).Methods("GET")
	addAPI(api.PostProposalPattern, apiHandler.PostProposalHandler).
		Methods("POST").
		Headers("Content-Type", "application/json")
	addAPI(api.GetProposalHandlerPattern, apiHandler.GetProposalHandler).Methods("GET")
	addAPI(api.GetProposalStateHandlerPattern, apiHandler.GetProposalStateHandler).Methods("GET")
	addAPI(api.GetProposalVotesHandlerPattern, apiHandler.GetProposalVotesHandler).Methods("GET")
	addAPI(api.GetProposalVoterHandlerPattern, apiHandler.GetProposalVoterHandler).Methods("GET")
	addAPI(api.PostVotePattern, apiHandler.PostVoteHandler).
		Methods("POST").
		Headers("Content-Type", "application/json")
	addAPI(api.PostExecutePattern, apiHandler.PostExecuteHandler).Methods("POST")
	addAPI(api.PostCancelPattern, apiHandler.PostCancelHandler).
		Methods("POST").
		Headers("Content-Type", "application/json")
	addAPI(api.GetParametersHandlerPattern, apiHandler.GetParametersHandler).Methods("GET")
	addAPI(api.PostParametersPattern, apiHandler.PostParametersHandler).
		Methods("POST").
		Headers("Content-Type", "application/json")
	addAPI(api.GetAccountHandlerPattern, apiHandler.GetAccountHandler).Methods("GET")
	addAPI(api.GetSubscribePattern, apiHandler.GetSubscribeHandler).Methods("GET")

	server.AddHandler("", network.UrlPathPrefixMetric, promhttp.Handler().ServeHTTP)

	// Execution group.
	var g run.Group
	{
		g.Add(func() error {
			if err := server.Start(); err != nil {
				log.Crit("failed to start the server", "error", err)
				return err
			}
			return nil
		}, func(error) {
			server.Stop()
		})
	}
	{
		cancel := make(chan struct{})
		g.Add(func() error {
			return cmdcommon.Interrupt(cancel)
		}, func(error) {
			close(cancel)
		})
	}

	if err := g.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
