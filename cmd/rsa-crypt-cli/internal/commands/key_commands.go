package commands

import (
	"context"
	"fmt"
	"time"

	"rsa_crypt_service/internal/domain/keys"
	"rsa_crypt_service/internal/infrastructure/cryptography"
	"rsa_crypt_service/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// KeyCommandHandler encapsulates logic for handling key pair operations via CLI.
type KeyCommandHandler struct {
	generator keys.KeyPairGenerator
	store     keys.KeyPairStore
	logger    logger.Logger
}

// NewKeyCommandHandler initializes a new KeyCommandHandler with logging,
// a key pair generator and a key file store.
func NewKeyCommandHandler() (*KeyCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	generator, err := cryptography.NewKeyPairGenerator(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key pair generator: %w", err)
	}

	store, err := cryptography.NewKeyPairStore(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key pair store: %w", err)
	}

	return &KeyCommandHandler{
		generator: generator,
		store:     store,
		logger:    loggerInstance,
	}, nil
}

// GenerateKeysCmd generates an RSA key pair and persists it in a selected directory
func (commandHandler *KeyCommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag: ", err)
		return
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag: ", err)
		return
	}
	dbType, err := cmd.Flags().GetString("db-type")
	if err != nil {
		commandHandler.logger.Error("invalid db-type flag: ", err)
		return
	}
	dbDSN, err := cmd.Flags().GetString("db-dsn")
	if err != nil {
		commandHandler.logger.Error("invalid db-dsn flag: ", err)
		return
	}

	uniqueID := uuid.New()

	keyPair, err := commandHandler.generator.Generate(keySize)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if !keyPair.IsValid() {
		commandHandler.logger.Error("generated key pair failed validation")
		return
	}

	privateKeyFilePath := fmt.Sprintf("%s/%s-key", keyDir, uniqueID.String())
	if err := commandHandler.store.SavePrivateKey(keyPair.Private, privateKeyFilePath); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	publicKeyFilePath := fmt.Sprintf("%s/%s-key.pub", keyDir, uniqueID.String())
	if err := commandHandler.store.SavePublicKey(keyPair.Public, publicKeyFilePath); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	// Metadata recording is opt-in via the db flags.
	if dbType == "" {
		return
	}

	repo, err := setupKeyPairRepository(dbType, dbDSN, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	meta := &keys.KeyPairMeta{
		ID:              uniqueID.String(),
		Algorithm:       "RSA",
		KeySize:         uint32(keySize),
		PublicKeyPath:   publicKeyFilePath,
		PrivateKeyPath:  privateKeyFilePath,
		DateTimeCreated: time.Now(),
	}
	if err := repo.Create(context.Background(), meta); err != nil {
		commandHandler.logger.Error(err)
		return
	}
}

// ValidateKeysCmd loads a key pair from files and reports whether it is valid
func (commandHandler *KeyCommandHandler) ValidateKeysCmd(cmd *cobra.Command, _ []string) {
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: ", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: ", err)
		return
	}

	publicKey, err := commandHandler.store.ReadPublicKey(publicKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	privateKey, err := commandHandler.store.ReadPrivateKey(privateKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	keyPair := &keys.KeyPair{Public: publicKey, Private: privateKey}
	if keyPair.IsValid() {
		commandHandler.logger.Info("Key pair is valid")
	} else {
		commandHandler.logger.Error("Key pair is invalid")
	}
}

// ListKeysCmd lists recorded key pair metadata
func (commandHandler *KeyCommandHandler) ListKeysCmd(cmd *cobra.Command, _ []string) {
	dbType, err := cmd.Flags().GetString("db-type")
	if err != nil {
		commandHandler.logger.Error("invalid db-type flag: ", err)
		return
	}
	dbDSN, err := cmd.Flags().GetString("db-dsn")
	if err != nil {
		commandHandler.logger.Error("invalid db-dsn flag: ", err)
		return
	}

	repo, err := setupKeyPairRepository(dbType, dbDSN, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	query := &keys.KeyPairQuery{SortBy: "date_time_created", SortOrder: "asc"}
	metaList, err := repo.List(context.Background(), query)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, meta := range metaList {
		commandHandler.logger.Info(fmt.Sprintf("%s RSA-%d public=%s private=%s created=%s",
			meta.ID, meta.KeySize, meta.PublicKeyPath, meta.PrivateKeyPath,
			meta.DateTimeCreated.Format(time.RFC3339)))
	}
}

// InitKeyCommands registers key management commands
func InitKeyCommands(rootCmd *cobra.Command) error {
	handler, err := NewKeyCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create key command handler: %w", err)
	}

	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate an RSA key pair",
		Run:   handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().IntP("key-size", "", 2048, "Modulus size in bits (minimum 32)")
	generateKeysCmd.Flags().StringP("key-dir", "", ".", "Directory to store the key files")
	generateKeysCmd.Flags().StringP("db-type", "", "", "Metadata database type (sqlite or postgres); empty disables recording")
	generateKeysCmd.Flags().StringP("db-dsn", "", "", "Metadata database DSN")
	rootCmd.AddCommand(generateKeysCmd)

	var validateKeysCmd = &cobra.Command{
		Use:   "validate-keys",
		Short: "Validate that a public/private key pair belongs together",
		Run:   handler.ValidateKeysCmd,
	}
	validateKeysCmd.Flags().StringP("public-key", "", "", "Path to public key file")
	validateKeysCmd.Flags().StringP("private-key", "", "", "Path to private key file")
	rootCmd.AddCommand(validateKeysCmd)

	var listKeysCmd = &cobra.Command{
		Use:   "list-keys",
		Short: "List recorded key pair metadata",
		Run:   handler.ListKeysCmd,
	}
	listKeysCmd.Flags().StringP("db-type", "", "sqlite", "Metadata database type (sqlite or postgres)")
	listKeysCmd.Flags().StringP("db-dsn", "", "", "Metadata database DSN")
	rootCmd.AddCommand(listKeysCmd)

	return nil
}
