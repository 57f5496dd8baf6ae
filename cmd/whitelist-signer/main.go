package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/feral-file/ff-collection-launch/internal/config"
	"github.com/feral-file/ff-collection-launch/internal/domain"
	"github.com/feral-file/ff-collection-launch/internal/logger"
	"github.com/feral-file/ff-collection-launch/internal/signature"
)

var (
	configFile string
	envPath    string
	cfg        *config.SignerConfig
)

var rootCmd = &cobra.Command{
	Use:   "whitelist-signer",
	Short: "Sign whitelist grants for a collection launch",
	Long: `Produce and check the signatures that admit wallets to a private sale phase.

The signer key and the collection address are read from the configuration
(collection_address, private_key) or the FF_COLLECTION_ environment.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadSignerConfig(configFile, envPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return logger.Initialize(logger.Config{Debug: cfg.Debug, SentryDSN: cfg.SentryDSN, Service: "whitelist-signer"})
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Flush(2 * time.Second)
	},
}

// signCmd signs a list of wallets
var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Sign the whitelist message of every wallet in a list",
	Long: `Sign the whitelist message of every wallet for one phase.

Wallets are read one per line from --input (or stdin), blank lines and lines
starting with # are ignored. The signed entries are written as JSON.`,
	RunE: runSign,
}

// addressCmd prints the authorized signer
var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Print the address of the configured signer key",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
		if err != nil {
			return fmt.Errorf("invalid private key: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), crypto.PubkeyToAddress(key.PublicKey).Hex())
		return nil
	},
}

// verifyCmd checks a signature against a signer
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check a whitelist signature",
	RunE:  runVerify,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&envPath, "env", "config/", "Path to environment files")

	signCmd.Flags().Uint8("phase", 0, "Phase the wallets are admitted to")
	signCmd.Flags().String("input", "", "File with one wallet per line (default stdin)")
	signCmd.Flags().String("output", "", "Output file (default stdout)")

	verifyCmd.Flags().String("wallet", "", "Wallet the signature was issued to")
	verifyCmd.Flags().Uint8("phase", 0, "Phase of the signature")
	verifyCmd.Flags().String("signature", "", "Hex encoded signature")
	verifyCmd.Flags().String("signer", "", "Authorized signer (default: address of the configured key)")
	_ = verifyCmd.MarkFlagRequired("wallet")
	_ = verifyCmd.MarkFlagRequired("signature")

	rootCmd.AddCommand(signCmd, addressCmd, verifyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSign(cmd *cobra.Command, args []string) error {
	phase, _ := cmd.Flags().GetUint8("phase")
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return fmt.Errorf("invalid private key: %w", err)
	}
	collection, err := domain.ParseAddress(cfg.CollectionAddress)
	if err != nil {
		return fmt.Errorf("invalid collection address: %w", err)
	}

	var input io.Reader = cmd.InOrStdin()
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		input = f
	}

	wallets, err := parseWallets(input)
	if err != nil {
		return err
	}

	ctx := context.Background()
	entries, err := signature.SignBatch(ctx, key, collection, wallets, phase, cfg.Workers)
	if err != nil {
		return fmt.Errorf("failed to sign wallets: %w", err)
	}
	logger.InfoCtx(ctx, "Signed whitelist",
		zap.String("collection", collection.Hex()),
		zap.Uint8("phase", phase),
		zap.Int("wallets", len(entries)),
	)

	var output io.Writer = cmd.OutOrStdout()
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		output = f
	}

	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(entries)
}

func runVerify(cmd *cobra.Command, args []string) error {
	walletFlag, _ := cmd.Flags().GetString("wallet")
	phase, _ := cmd.Flags().GetUint8("phase")
	sigFlag, _ := cmd.Flags().GetString("signature")
	signerFlag, _ := cmd.Flags().GetString("signer")

	wallet, err := domain.ParseAddress(walletFlag)
	if err != nil {
		return err
	}
	collection, err := domain.ParseAddress(cfg.CollectionAddress)
	if err != nil {
		return fmt.Errorf("invalid collection address: %w", err)
	}
	sig, err := hexutil.Decode(sigFlag)
	if err != nil {
		return fmt.Errorf("invalid signature: %w", err)
	}

	var signer common.Address
	if signerFlag != "" {
		if signer, err = domain.ParseAddress(signerFlag); err != nil {
			return err
		}
	} else {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
		if err != nil {
			return fmt.Errorf("invalid private key: %w", err)
		}
		signer = crypto.PubkeyToAddress(key.PublicKey)
	}

	valid := signature.NewWhitelistVerifier(signer).Verify(collection, wallet, phase, sig)
	fmt.Fprintf(cmd.OutOrStdout(), "valid: %t\n", valid)
	if !valid {
		return fmt.Errorf("signature was not issued by %s", signer.Hex())
	}
	return nil
}

// parseWallets reads one wallet address per line, skipping blanks and # comments
func parseWallets(r io.Reader) ([]common.Address, error) {
	var wallets []common.Address
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		wallet, err := domain.ParseAddress(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		wallets = append(wallets, wallet)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wallets: %w", err)
	}
	return wallets, nil
}
