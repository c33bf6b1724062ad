package main

import (
	"fmt"
	"strings"
	"time"

	"release-auction/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const usage = `usage: release-auction [flags] <command> [id]

commands:
  watch <property-id>   live auction view, ticking every second
  bid <property-id>     place a bid (--amount, --start-date, --end-date)
  card <property-id>    compact search-result card
  my-bids               bids placed by --user-id
  sandbox               serve a local copy of the API with sample listings

flags:
`

func ParseArgs(argv []string) (Args, error) {
	flags := pflag.NewFlagSet("release-auction", pflag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprint(flags.Output(), usage)
		flags.PrintDefaults()
	}

	// api config
	flags.String("api-url", repository.DefaultBaseURL, "base URL of the ReLease API")
	flags.String("token", "", "bearer token sent with every request")
	flags.Duration("request-timeout", repository.DefaultRequestTimeout, "timeout of a single API request")

	// view config
	flags.String("role", "buyer", "viewer role: buyer, seller or anonymous")
	flags.String("user-id", "", "user whose bids my-bids lists")
	flags.Duration("tick", time.Second, "countdown refresh interval")
	flags.Duration("refresh-interval", 0, "re-fetch the listing this often while watching (0 disables)")

	// bid form
	flags.String("amount", "", "bid amount; defaults to the minimum price")
	flags.String("start-date", "", "requested tenancy start (YYYY-MM-DD)")
	flags.String("end-date", "", "requested tenancy end (YYYY-MM-DD)")

	// sandbox config
	flags.String("sandbox-addr", ":3001", "listen address of the sandbox API")

	flags.String("log-level", "info", "log level: debug, info, warn or error")

	if err := flags.Parse(argv); err != nil {
		return Args{}, err
	}

	// bind pflag to viper
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return Args{}, err
	}
	v.SetEnvPrefix("RELEASE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	positional := flags.Args()
	args := Args{
		APIURL:          v.GetString("api-url"),
		Token:           v.GetString("token"),
		RequestTimeout:  v.GetDuration("request-timeout"),
		Role:            v.GetString("role"),
		UserID:          v.GetString("user-id"),
		Tick:            v.GetDuration("tick"),
		RefreshInterval: v.GetDuration("refresh-interval"),
		SandboxAddr:     v.GetString("sandbox-addr"),
		LogLevel:        v.GetString("log-level"),
		Bid: BidArgs{
			Amount:    v.GetString("amount"),
			StartDate: v.GetString("start-date"),
			EndDate:   v.GetString("end-date"),
		},
		usage: flags.Usage,
	}
	if len(positional) > 0 {
		args.Command = positional[0]
	}
	if len(positional) > 1 {
		args.Target = positional[1]
	}
	return args, nil
}

type BidArgs struct {
	Amount    string
	StartDate string
	EndDate   string
}

type Args struct {
	Command         string        `validate:"required,oneof=watch bid card my-bids sandbox"`
	Target          string        `validate:"required_if=Command watch,required_if=Command bid,required_if=Command card"`
	APIURL          string        `validate:"required,url"`
	Token           string
	RequestTimeout  time.Duration `validate:"gt=0"`
	Role            string        `validate:"oneof=buyer seller anonymous"`
	UserID          string        `validate:"required_if=Command my-bids"`
	Tick            time.Duration `validate:"gt=0"`
	RefreshInterval time.Duration `validate:"gte=0"`
	SandboxAddr     string        `validate:"required"`
	LogLevel        string        `validate:"oneof=debug info warn error"`
	Bid             BidArgs

	usage func()
}

func (args Args) Validate() error {
	if err := validator.New().Struct(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func (args Args) Usage() {
	if args.usage != nil {
		args.usage()
	}
}
