////////////////////////////////////////////////////////////////////////////////
// Grant Ledger: round based contribution ledger with batched votes
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/CosmWasm/tinyjson"
	"github.com/rs/zerolog"

	"grant_ledger/config"
	"grant_ledger/host"
	"grant_ledger/sdk"
	"grant_ledger/store"
)

const usage = `usage: grant_ledger [flags] instantiate|execute|query '<json>'

examples:
  grant_ledger -sender creator instantiate '{"admins":["admin1","admin2"]}'
  grant_ledger -sender user1 -funds 150inj execute '{"batch_vote":{"project_ids":[1,1],"amounts":["100","50"]}}'
  grant_ledger query '{"project":{"round_id":1,"project_id":1}}'
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("grant_ledger", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "path to a TOML config file")
	sender := fs.String("sender", "", "address of the invoking account")
	funds := fs.String("funds", "", "attached coins, like 160000inj")
	txID := fs.String("tx", "", "transaction id, random when empty")
	height := fs.Uint64("height", 0, "block height recorded in the env")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return errors.New("expected a command and a JSON message")
	}
	command, payload := fs.Arg(0), []byte(fs.Arg(1))

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	log, err := sdk.NewLogger(stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("close store")
		}
	}()

	bank := sdk.NewMemoryBank()
	rt := host.New(st, cfg.Validator(), bank, log)

	switch command {
	case "query":
		out, err := rt.Query(ctx, payload)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, string(out))
		return err
	case "instantiate", "execute":
		coins, err := sdk.ParseCoins(*funds)
		if err != nil {
			return err
		}
		env := sdk.NewEnv(sdk.Address(strings.TrimSpace(*sender)), coins...)
		env.TxID = *txID
		env.BlockHeight = *height

		var res *host.Result
		if command == "instantiate" {
			res, err = rt.Instantiate(ctx, env, payload)
		} else {
			res, err = rt.Execute(ctx, env, payload)
		}
		if res == nil {
			return err
		}
		// a settlement error still comes with the committed result
		runErr := err
		logSettled(log, bank)
		out, err := tinyjson.Marshal(res)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(stdout, string(out)); err != nil {
			return err
		}
		return runErr
	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

// logSettled reports what the invocation paid out.
func logSettled(log zerolog.Logger, bank *sdk.MemoryBank) {
	for _, s := range bank.Sends() {
		log.Debug().Str("to", s.ToAddress.String()).Int("coins", len(s.Amount)).Msg("bank send")
	}
}
