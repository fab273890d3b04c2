package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"rsa_crypt_service/internal/domain/cipher"
	"rsa_crypt_service/internal/domain/keys"
	"rsa_crypt_service/internal/infrastructure/cryptography"
	"rsa_crypt_service/internal/pkg/logger"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// Default output file names used when no output path is given.
const (
	defaultEncryptedFileName = "encrypted.cypher"
	defaultDecryptedFileName = "decrypted.message"
)

// CipherCommandHandler encapsulates logic for handling block cipher operations via CLI.
type CipherCommandHandler struct {
	blockCipher cipher.BlockCipher
	store       keys.KeyPairStore
	logger      logger.Logger
}

// NewCipherCommandHandler initializes a new CipherCommandHandler with
// logging, a block cipher and a key file store.
func NewCipherCommandHandler() (*CipherCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	blockCipher, err := cryptography.NewBlockCipher(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create block cipher: %w", err)
	}

	store, err := cryptography.NewKeyPairStore(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key pair store: %w", err)
	}

	return &CipherCommandHandler{
		blockCipher: blockCipher,
		store:       store,
		logger:      loggerInstance,
	}, nil
}

// EncryptCmd encrypts a file blockwise using an RSA public key
func (commandHandler *CipherCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: ", err)
		return
	}

	publicKey, err := commandHandler.store.ReadPublicKey(publicKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if outputFile == "" {
		outputFile = defaultEncryptedFileName
	}

	fileIn, fileOut, size, err := openInputOutput(inputFile, outputFile)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer closeFiles(fileIn, fileOut, commandHandler.logger)

	bar := progressbar.DefaultBytes(size, "Encrypting")
	progress := func(n int64) { _ = bar.Add64(n) }

	if err := commandHandler.blockCipher.Encrypt(fileIn, fileOut, publicKey, progress); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Encrypted data path ", outputFile)
}

// DecryptCmd decrypts a file blockwise using an RSA private key
func (commandHandler *CipherCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: ", err)
		return
	}

	privateKey, err := commandHandler.store.ReadPrivateKey(privateKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if outputFile == "" {
		outputFile = defaultDecryptedFileName
	}

	fileIn, fileOut, size, err := openInputOutput(inputFile, outputFile)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer closeFiles(fileIn, fileOut, commandHandler.logger)

	bar := progressbar.DefaultBytes(size, "Decrypting")
	progress := func(n int64) { _ = bar.Add64(n) }

	if err := commandHandler.blockCipher.Decrypt(fileIn, fileOut, privateKey, progress); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Decrypted data path ", outputFile)
}

// openInputOutput opens the input file for reading and creates/truncates
// the output file, returning the input size for progress display.
func openInputOutput(inputFile, outputFile string) (*os.File, *os.File, int64, error) {
	fileIn, err := os.Open(filepath.Clean(inputFile))
	if err != nil {
		return nil, nil, 0, fmt.Errorf("failed to open input file: %w", err)
	}

	info, err := fileIn.Stat()
	if err != nil {
		_ = fileIn.Close()
		return nil, nil, 0, fmt.Errorf("failed to stat input file: %w", err)
	}

	fileOut, err := os.Create(filepath.Clean(outputFile))
	if err != nil {
		_ = fileIn.Close()
		return nil, nil, 0, fmt.Errorf("failed to create output file: %w", err)
	}

	return fileIn, fileOut, info.Size(), nil
}

func closeFiles(fileIn, fileOut *os.File, log logger.Logger) {
	if err := fileIn.Close(); err != nil {
		log.Warn("failed to close input file: ", err)
	}
	if err := fileOut.Close(); err != nil {
		log.Warn("failed to close output file: ", err)
	}
}

// InitCipherCommands registers block cipher commands
func InitCipherCommands(rootCmd *cobra.Command) error {
	handler, err := NewCipherCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create cipher command handler: %w", err)
	}

	var encryptFileCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file blockwise using RSA",
		Run:   handler.EncryptCmd,
	}
	encryptFileCmd.Flags().StringP("input-file", "", "", "Path to input file which needs to be encrypted")
	encryptFileCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file (default "+defaultEncryptedFileName+")")
	encryptFileCmd.Flags().StringP("public-key", "", "", "Path to RSA public key file")
	rootCmd.AddCommand(encryptFileCmd)

	var decryptFileCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a file blockwise using RSA",
		Run:   handler.DecryptCmd,
	}
	decryptFileCmd.Flags().StringP("input-file", "", "", "Path to encrypted file")
	decryptFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file (default "+defaultDecryptedFileName+")")
	decryptFileCmd.Flags().StringP("private-key", "", "", "Path to RSA private key file")
	rootCmd.AddCommand(decryptFileCmd)

	return nil
}
