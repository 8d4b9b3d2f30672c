package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	folderrepo "github.com/RoniAntikainen/Taitoarvio-sub000/internal/adapter/postgres/folder"
	membershiprepo "github.com/RoniAntikainen/Taitoarvio-sub000/internal/adapter/postgres/membership"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

var membersFolder string

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Inspect folder access",
}

var membersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the owner and members of a folder",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		folderID, err := uuid.Parse(membersFolder)
		if err != nil {
			return fmt.Errorf("invalid --folder: %w", err)
		}

		ctx, pool, done, err := connect(cmd)
		if err != nil {
			return err
		}
		defer done()

		f, err := folderrepo.New(pool).GetByID(ctx, folderID)
		if err != nil {
			return fmt.Errorf("get folder: %w", err)
		}
		members, err := membershiprepo.New(pool).List(ctx, folderID)
		if err != nil {
			return fmt.Errorf("list members: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Folder %q (%s)\n", f.Name, f.ID)
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "EMAIL\tROLE\tSINCE")
		fmt.Fprintf(tw, "%s\t%s\t%s\n", f.OwnerID, domain.RoleOwner, f.CreatedAt.Format("2006-01-02"))
		for _, m := range members {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", m.UserEmail, m.Role, m.CreatedAt.Format("2006-01-02"))
		}
		return tw.Flush()
	},
}

func init() {
	membersListCmd.Flags().StringVar(&membersFolder, "folder", "", "folder id")
	_ = membersListCmd.MarkFlagRequired("folder")

	membersCmd.AddCommand(membersListCmd)
	rootCmd.AddCommand(membersCmd)
}
