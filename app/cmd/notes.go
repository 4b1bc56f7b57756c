package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ribgsilva/mindful-notes/app/cmd/client"
	"github.com/ribgsilva/mindful-notes/business/v1/note"
	"github.com/spf13/cobra"
)

var (
	notesJSON   bool
	notesSearch string
	noteTitle   string
	noteContent string
	noteColor   string
	deleteYes   bool
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Manage the notes of the logged in user",
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the notes, most recently updated first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.Open(cmd.Context(), log, cmd.OutOrStdout(), true)
		if err != nil {
			return err
		}
		defer app.Close()

		notes, err := app.Notes.FetchAll(cmd.Context())
		if err != nil {
			return err
		}
		return printNotes(cmd.OutOrStdout(), note.Search(notes, notesSearch))
	},
}

var notesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Print a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.Open(cmd.Context(), log, cmd.OutOrStdout(), true)
		if err != nil {
			return err
		}
		defer app.Close()

		n, ok, err := app.Notes.GetOne(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !ok {
			return note.ErrNotFound
		}
		return printNote(cmd.OutOrStdout(), n)
	},
}

var notesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note, a color is picked when none is given",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		newN := note.NewNote{Title: noteTitle, Content: noteContent, Color: noteColor}
		if err := newN.Validate(); err != nil {
			return err
		}

		app, err := client.Open(cmd.Context(), log, cmd.OutOrStdout(), true)
		if err != nil {
			return err
		}
		defer app.Close()

		n, err := app.Notes.Create(cmd.Context(), newN)
		if err != nil {
			return err
		}
		return printNote(cmd.OutOrStdout(), n)
	},
}

var notesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change the title, content or color of a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var p note.Patch
		if cmd.Flags().Changed("title") {
			p.Title = &noteTitle
		}
		if cmd.Flags().Changed("content") {
			p.Content = &noteContent
		}
		if cmd.Flags().Changed("color") {
			p.Color = &noteColor
		}
		if err := p.Validate(); err != nil {
			return err
		}

		app, err := client.Open(cmd.Context(), log, cmd.OutOrStdout(), true)
		if err != nil {
			return err
		}
		defer app.Close()

		n, err := app.Notes.Update(cmd.Context(), args[0], p)
		if err != nil {
			return err
		}
		return printNote(cmd.OutOrStdout(), n)
	},
}

var notesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !deleteYes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Delete note "+args[0]+"? This cannot be undone [y/N] ") {
			fmt.Fprintln(cmd.OutOrStdout(), "canceled")
			return nil
		}

		app, err := client.Open(cmd.Context(), log, cmd.OutOrStdout(), true)
		if err != nil {
			return err
		}
		defer app.Close()

		deleted, err := app.Notes.Delete(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !deleted {
			return note.ErrNotFound
		}
		return nil
	},
}

func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprint(out, question)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func printNotes(out io.Writer, notes []note.Note) error {
	if notesJSON {
		return json.NewEncoder(out).Encode(notes)
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCOLOR\tUPDATED")
	for _, n := range notes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", n.ID, n.Title, n.Color, n.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func printNote(out io.Writer, n note.Note) error {
	if notesJSON {
		return json.NewEncoder(out).Encode(n)
	}
	_, err := fmt.Fprintf(out, "%s  %s  (%s)\nupdated %s\n\n%s\n",
		n.ID, n.Title, n.Color, n.UpdatedAt.Local().Format("2006-01-02 15:04"), n.Content)
	return err
}

func init() {
	notesCmd.PersistentFlags().BoolVar(&notesJSON, "json", false, "Print json instead of text")
	notesListCmd.Flags().StringVarP(&notesSearch, "search", "s", "", "Only notes whose title or content contain this text")

	for _, c := range []*cobra.Command{notesCreateCmd, notesUpdateCmd} {
		c.Flags().StringVarP(&noteTitle, "title", "t", "", "Title of the note")
		c.Flags().StringVarP(&noteContent, "content", "c", "", "Content of the note")
		c.Flags().StringVar(&noteColor, "color", "", "Color of the note, e.g. #9b87f5")
	}
	notesDeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Do not ask for confirmation")

	notesCmd.AddCommand(notesListCmd, notesGetCmd, notesCreateCmd, notesUpdateCmd, notesDeleteCmd)
	rootCmd.AddCommand(notesCmd)
}
