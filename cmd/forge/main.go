package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"forge"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	homeDir, _ = os.UserHomeDir()
	configDir  = filepath.Join(homeDir, ".forge")
	dbpath     = filepath.Join(configDir, "ledger.db")
	keypath    = filepath.Join(configDir, "keypair.json")
	rpcURL     = forge.DevnetRPC
	logLevel   = "info"
)

func main() {
	root := &cobra.Command{
		Use:   "forge",
		Short: "mint SPL and Token-2022 tokens from the command line",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			forge.InitLogging(logLevel, false)
		},
	}

	root.PersistentFlags().StringVar(&rpcURL, "rpc", forge.DevnetRPC, "Solana RPC URL")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(initCmd())
	root.AddCommand(recoverCmd())
	root.AddCommand(addressCmd())
	root.AddCommand(createCmd())
	root.AddCommand(mintCmd())
	root.AddCommand(balanceCmd())
	root.AddCommand(ledgerCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "create new wallet",
		Run: func(cmd *cobra.Command, args []string) {
			if _, err := os.Stat(keypath); err == nil {
				fmt.Println("wallet exists")
				return
			}

			mnemonic, pubkey, secret, err := forge.Generate()
			if err != nil {
				die(err)
			}

			fmt.Println("keypair generated")
			fmt.Printf("pubkey: %s\n\n", pubkey)
			fmt.Println("save your seed phrase:")
			fmt.Println(mnemonic)
			fmt.Println("")

			pwd := readpwd("password: ")
			if err := forge.SaveKeystore(keypath, secret, pwd); err != nil {
				die(err)
			}

			db, err := forge.Opendb(dbpath)
			if err != nil {
				die(err)
			}
			db.Close()

			fmt.Printf("saved: %s\n", keypath)
		},
	}
}

func recoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recover",
		Short: "restore wallet from mnemonic",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print("mnemonic: ")
			reader := bufio.NewReader(os.Stdin)
			mnemonic, _ := reader.ReadString('\n')
			mnemonic = strings.TrimSpace(mnemonic)

			pubkey, secret, err := forge.Recover(mnemonic)
			if err != nil {
				die(err)
			}

			fmt.Printf("pubkey: %s\n", pubkey)

			pwd := readpwd("password: ")
			if err := forge.SaveKeystore(keypath, secret, pwd); err != nil {
				die(err)
			}

			fmt.Println("wallet recovered")
		},
	}
}

func addressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "address",
		Short: "show wallet pubkey",
		Run: func(cmd *cobra.Command, args []string) {
			pwd := readpwd("password: ")
			secret, err := forge.LoadKeystore(keypath, pwd)
			if err != nil {
				die(err)
			}
			fmt.Println(solana.PublicKey(secret[32:64]).String())
		},
	}
}

func createCmd() *cobra.Command {
	var (
		name     string
		symbol   string
		uri      string
		decimals uint8
		supply   string
		standard string
	)

	c := &cobra.Command{
		Use:   "create",
		Short: "create a new token, optionally with initial supply",
		Long: "Example: forge create --name Gold --symbol GLD --decimals 6 --supply 100\n" +
			"Standards: classic (SPL + Metaplex metadata), token2022 (embedded metadata)",
		Run: func(cmd *cobra.Command, args []string) {
			std, ok := forge.ParseStandard(standard)
			if !ok {
				die(fmt.Errorf("unknown standard: %s (use: classic, token2022)", standard))
			}

			pad, db := openLaunchpad()
			defer db.Close()

			spec := forge.TokenSpec{
				Name:          name,
				Symbol:        symbol,
				MetadataURI:   uri,
				Decimals:      decimals,
				InitialSupply: supply,
			}

			fmt.Printf("creating: %s (%s), %d decimals, standard %s\n", name, symbol, decimals, std)
			fmt.Printf("rpc: %s\n\n", rpcURL)

			ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
			defer cancel()

			result, err := pad.CreateToken(ctx, spec, std)
			if err != nil {
				die(err)
			}

			fmt.Printf("\nmint: %s\n", result.Mint.String())
			fmt.Printf("tx: %s\n", result.Signature.String()[:16]+"...")
			if supply != "" {
				fmt.Printf("minted %s %s to your wallet\n", supply, symbol)
			}
		},
	}

	c.Flags().StringVar(&name, "name", "", "token name")
	c.Flags().StringVar(&symbol, "symbol", "", "token symbol")
	c.Flags().StringVar(&uri, "uri", "", "metadata URI (image or JSON)")
	c.Flags().Uint8Var(&decimals, "decimals", 9, "decimals (0-9)")
	c.Flags().StringVar(&supply, "supply", "", "initial supply, e.g. 100 or 1.5")
	c.Flags().StringVar(&standard, "standard", "token2022", "token standard: classic, token2022")
	c.MarkFlagRequired("name")
	c.MarkFlagRequired("symbol")

	return c
}

func mintCmd() *cobra.Command {
	var (
		decimals uint8
		standard string
	)

	c := &cobra.Command{
		Use:   "mint <mint> <recipient> <amount>",
		Short: "mint additional supply to a recipient",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			std, ok := forge.ParseStandard(standard)
			if !ok {
				die(fmt.Errorf("unknown standard: %s (use: classic, token2022)", standard))
			}

			mint, err := forge.DecodeAddress(args[0])
			if err != nil {
				die(err)
			}

			pad, db := openLaunchpad()
			defer db.Close()

			fmt.Printf("minting: %s to %s\n", args[2], trunc(args[1]))
			fmt.Printf("rpc: %s\n\n", rpcURL)

			ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
			defer cancel()

			sig, err := pad.MintMore(ctx, forge.MintRequest{
				Mint:      mint,
				Standard:  std,
				Decimals:  decimals,
				Recipient: args[1],
				Amount:    args[2],
			})
			if err != nil {
				die(err)
			}

			fmt.Printf("\ntx: %s\n", sig.String()[:16]+"...")
		},
	}

	c.Flags().Uint8Var(&decimals, "decimals", 9, "the mint's decimals")
	c.Flags().StringVar(&standard, "standard", "token2022", "token standard: classic, token2022")

	return c
}

func balanceCmd() *cobra.Command {
	var (
		decimals uint8
		standard string
	)

	c := &cobra.Command{
		Use:   "balance [mint]",
		Short: "check SOL balance, plus a token balance if a mint is given",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			pwd := readpwd("password: ")
			secret, err := forge.LoadKeystore(keypath, pwd)
			if err != nil {
				die(err)
			}

			pubkey := solana.PublicKey(secret[32:64])
			fmt.Printf("pubkey: %s\n", pubkey.String())
			fmt.Printf("rpc: %s\n\n", rpcURL)

			ledger := forge.NewRPCLedger(rpcURL)
			ctx := context.Background()

			sol, err := forge.SolBalance(ctx, ledger.Client(), pubkey)
			if err != nil {
				fmt.Println("SOL: (error)")
			} else {
				fmt.Printf("SOL: %.6f\n", float64(sol)/1e9)
			}

			if len(args) == 1 {
				std, ok := forge.ParseStandard(standard)
				if !ok {
					die(fmt.Errorf("unknown standard: %s", standard))
				}
				mint, err := forge.DecodeAddress(args[0])
				if err != nil {
					die(err)
				}
				bal, err := forge.TokenBalance(ctx, ledger.Client(), pubkey, mint, std)
				if err != nil {
					fmt.Printf("%s: (no account)\n", trunc(args[0]))
				} else {
					fmt.Printf("%s: %s\n", trunc(args[0]), forge.FmtAmount(bal, decimals))
				}
			}
		},
	}

	c.Flags().Uint8Var(&decimals, "decimals", 9, "the mint's decimals")
	c.Flags().StringVar(&standard, "standard", "token2022", "token standard: classic, token2022")

	return c
}

func ledgerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ledger",
		Short: "list past transactions",
		Run: func(cmd *cobra.Command, args []string) {
			db, err := forge.Opendb(dbpath)
			if err != nil {
				die(err)
			}
			defer db.Close()

			records, err := forge.ListRecords(db, 20)
			if err != nil {
				die(err)
			}

			if len(records) == 0 {
				fmt.Println("no transactions")
				return
			}

			fmt.Printf("%-10s | %-8s | %-12s | %12s | %-12s | %s\n", "TX", "TYPE", "MINT", "AMOUNT", "TO", "TIME")
			fmt.Println(strings.Repeat("-", 80))

			now := time.Now().Unix()
			for _, r := range records {
				fmt.Printf("%-10s | %-8s | %-12s | %12s | %-12s | %s\n",
					r.Signature[:8],
					r.Type,
					trunc(r.Mint),
					r.Amount,
					trunc(r.Recipient),
					fmtAgo(now-r.Time.Unix()),
				)
			}
		},
	}
}

// openLaunchpad loads the keystore, opens the record db and wires a
// Launchpad with status printing and persistent records.
func openLaunchpad() (*forge.Launchpad, *sql.DB) {
	pwd := readpwd("password: ")
	secret, err := forge.LoadKeystore(keypath, pwd)
	if err != nil {
		die(err)
	}

	db, err := forge.Opendb(dbpath)
	if err != nil {
		die(err)
	}

	ledger := forge.NewRPCLedger(rpcURL)
	wallet := forge.NewKeypairWallet(secret, ledger.Client())

	pad := forge.NewLaunchpad(ledger, wallet)
	pad.OnStatus = func(s forge.Status) {
		switch s {
		case forge.StatusSucceeded:
			fmt.Println("✓ confirmed")
		case forge.StatusFailed:
		default:
			fmt.Printf("✓ %s\n", s)
		}
	}
	pad.OnRecord = func(r forge.TransactionRecord) {
		if err := forge.SaveRecord(db, r); err != nil {
			fmt.Fprintf(os.Stderr, "warning: record not saved: %v\n", err)
		}
	}

	return pad, db
}

func die(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func readpwd(prompt string) []byte {
	fmt.Print(prompt)
	pwd, _ := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	return pwd
}

func trunc(s string) string {
	if len(s) > 12 {
		return s[:8] + "..."
	}
	return s
}

func fmtAgo(secs int64) string {
	if secs < 60 {
		return fmt.Sprintf("%ds ago", secs)
	}
	if secs < 3600 {
		return fmt.Sprintf("%dm ago", secs/60)
	}
	if secs < 86400 {
		return fmt.Sprintf("%dh ago", secs/3600)
	}
	return fmt.Sprintf("%dd ago", secs/86400)
}
