package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/versescope/versescope/internal/utils"
	"github.com/versescope/versescope/pkg/reference"
	"github.com/versescope/versescope/pkg/render"
	"github.com/versescope/versescope/pkg/session"
)

// showCmd implements: versescope show
var showCmd = &cobra.Command{
	Use:   "show [book] [chapter]",
	Short: "Fetch a chapter and print it in parallel columns",
	Example: `  versescope show Genesis 1 -t UST,NET
  versescope show --book "1 Samuel" --chapter 17 -t BHSA,NET -f html > samuel17.html`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := showReference(cmd, args)
		if err != nil {
			return err
		}

		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		tokens, _ := cmd.Flags().GetString("translations")
		sel := selectTranslations(cat, utils.SplitList(tokens))

		client, err := newTextClient(cmd)
		if err != nil {
			return err
		}

		ctrl := newController(cmd.Context(), client, sel, ref)
		ctrl.RequestFetch()
		ctrl.Wait()

		state := ctrl.State()
		if state.Kind != session.Ready {
			if state.Err != nil {
				return fmt.Errorf("could not load %s: %w", ref, state.Err)
			}
			return fmt.Errorf("could not load %s", ref)
		}

		format, _ := cmd.Flags().GetString("format")
		width, _ := cmd.Flags().GetInt("width")
		out := cmd.OutOrStdout()
		switch strings.ToLower(format) {
		case "text":
			return render.Text(out, state.Columns(), width)
		case "html":
			return render.HTMLPage(out, render.Page{Title: ref.String(), Columns: state.Columns()})
		case "json":
			return render.JSON(out, state.View())
		default:
			return fmt.Errorf("invalid format %q (want text, html or json)", format)
		}
	},
}

// showReference takes the reference from positional args, then flags, then config defaults.
func showReference(cmd *cobra.Command, args []string) (reference.Reference, error) {
	def, err := defaultReference()
	if err != nil {
		return reference.Reference{}, fmt.Errorf("invalid default reference in config: %w", err)
	}

	book, _ := cmd.Flags().GetString("book")
	chapter, _ := cmd.Flags().GetInt("chapter")
	if len(args) > 0 {
		book = args[0]
	}
	if len(args) > 1 {
		if chapter, err = strconv.Atoi(args[1]); err != nil {
			return reference.Reference{}, fmt.Errorf("invalid chapter %q", args[1])
		}
	}
	if book == "" {
		book = def.Book
	}
	if chapter == 0 {
		chapter = def.Chapter
	}
	return reference.New(book, chapter)
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringP("book", "b", "", "Book name (default from config)")
	showCmd.Flags().IntP("chapter", "c", 0, "Chapter number (default from config)")
	showCmd.Flags().StringP("translations", "t", "", "Comma-separated translation short names or names (default from config)")
	showCmd.Flags().StringP("format", "f", "text", "Output format: text, html, json")
	showCmd.Flags().IntP("width", "w", render.DefaultTextWidth, "Terminal width for text output")
}
