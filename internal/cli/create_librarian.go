package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/command/registeruser"
	"github.com/AntonStoeckl/library-backend/library/shell/config"
	"github.com/AntonStoeckl/library-backend/library/shell/passwords"
)

// PasswordEnv is read by create-librarian when --password is not given, before falling back to a prompt.
const PasswordEnv = "LIBRARY_LIBRARIAN_PASSWORD"

var errPasswordsDiffer = errors.New("passwords do not match")

func newCreateLibrarianCmd() *cobra.Command {
	var (
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "create-librarian",
		Short: "Create a librarian account",
		Long: `Creates a librarian login directly in the database.

Librarians can only be registered by other librarians through the API,
this command bootstraps the first one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				password = os.Getenv(PasswordEnv)
			}

			if password == "" {
				prompted, err := promptPassword(cmd.ErrOrStderr())
				if err != nil {
					return err
				}

				password = prompted
			}

			logger := config.NewLogger(cfg, os.Stderr)

			repo, closeFn, err := openMigratedRepository(cmd.Context(), logger)
			if err != nil {
				return err
			}
			defer closeFn()

			userID, err := createLibrarian(cmd.Context(), registeruser.NewCommandHandler(repo), passwords.NewHasher(), username, password)
			if err != nil {
				return err
			}

			ok(cmd.OutOrStdout(), "Librarian %s created (id %s)", username, userID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Login name of the librarian")
	cmd.Flags().StringVar(&password, "password", "", "Password, prompted for when omitted")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

// bootstrapActor stands in for a logged-in librarian when the CLI creates accounts.
func bootstrapActor() core.Actor {
	return core.Actor{UserID: uuid.Nil, Username: "libraryd", Role: core.RoleLibrarian}
}

func createLibrarian(
	ctx context.Context,
	handler registeruser.CommandHandler,
	hasher passwords.Hasher,
	username, password string,
) (uuid.UUID, error) {

	hash, err := hasher.Hash(password)
	if err != nil {
		return uuid.Nil, err
	}

	command := registeruser.BuildCommand(bootstrapActor(), username, hash, core.RoleLibrarian, registeruser.Profile{}, time.Now())

	if _, err := handler.Handle(ctx, command); err != nil {
		return uuid.Nil, err
	}

	return command.User.ID, nil
}

func promptPassword(w io.Writer) (string, error) {
	fd := int(os.Stdin.Fd()) //nolint:gosec
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("no password given: use --password, %s or run in a terminal", PasswordEnv)
	}

	_, _ = fmt.Fprint(w, "Password: ")
	first, err := term.ReadPassword(fd)
	_, _ = fmt.Fprintln(w)
	if err != nil {
		return "", err
	}

	_, _ = fmt.Fprint(w, "Repeat password: ")
	second, err := term.ReadPassword(fd)
	_, _ = fmt.Fprintln(w)
	if err != nil {
		return "", err
	}

	if string(first) != string(second) {
		return "", errPasswordsDiffer
	}

	return strings.TrimSpace(string(first)), nil
}
