package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/papermill/maintenance-log/internal/app"
	"github.com/papermill/maintenance-log/internal/domain"
	"github.com/papermill/maintenance-log/internal/viewstate/recordlist"
)

const timeLayout = "2006-01-02 15:04"

// runCommand dispatches args[0] with the remaining args as its flags.
func runCommand(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New("missing command")
	}

	name, rest := args[0], args[1:]
	switch name {
	case "list":
		return runList(ctx, a, rest, out)
	case "show":
		return runShow(ctx, a, rest, out)
	case "save":
		return runSave(ctx, a, rest, out)
	case "delete":
		return runDelete(ctx, a, rest, out)
	case "equipment":
		return runEquipment(ctx, a, rest, out)
	default:
		return fmt.Errorf("unknown command %q", name)
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

// ---------------------------------------------------------------------------
// list / equipment
// ---------------------------------------------------------------------------

func runList(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	fs := newFlagSet("list")
	query := fs.String("q", "", "search title, content and equipment (case-insensitive)")
	equipment := fs.String("equipment", "", "only records of this equipment (exact match)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	vm := a.NewRecordList()
	vm.SetSearchQuery(*query)
	if isSet(fs, "equipment") {
		vm.SelectEquipment(equipment)
	}

	st, err := firstLoaded(ctx, vm)
	if err != nil {
		return err
	}

	if len(st.Records) == 0 {
		fmt.Fprintln(out, "no records")
		return nil
	}
	for _, r := range st.Records {
		fmt.Fprintf(out, "%d\t%s\t%s\t%s\n",
			r.ID, r.UpdatedAt.Format(timeLayout), orDash(r.EquipmentName), r.Title)
	}
	return nil
}

func runEquipment(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	fs := newFlagSet("equipment")
	if err := fs.Parse(args); err != nil {
		return err
	}

	st, err := firstLoaded(ctx, a.NewRecordList())
	if err != nil {
		return err
	}

	for _, name := range st.EquipmentNames {
		fmt.Fprintln(out, orDash(name))
	}
	return nil
}

// firstLoaded runs vm until it has combined both live inputs once and
// returns that state.
func firstLoaded(ctx context.Context, vm *recordlist.ViewModel) (recordlist.State, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- vm.Start(ctx) }()

	updates, unsubscribe := vm.Subscribe()
	defer unsubscribe()

	for {
		select {
		case st := <-updates:
			if !st.IsLoading {
				cancel()
				<-done
				return st, nil
			}
		case err := <-done:
			if err == nil {
				err = ctx.Err()
			}
			return recordlist.State{}, fmt.Errorf("load records: %w", err)
		}
	}
}

// ---------------------------------------------------------------------------
// show / save / delete
// ---------------------------------------------------------------------------

func runShow(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	fs := newFlagSet("show")
	id := fs.Int64("id", 0, "record id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return domain.NewValidationError("id", "must be positive")
	}

	vm := a.NewRecordDetail()
	if err := vm.Load(ctx, *id); err != nil {
		return err
	}
	st := vm.State()
	if st.IsNewRecord {
		return fmt.Errorf("record %d: %w", *id, domain.ErrNotFound)
	}

	fmt.Fprintf(out, "id:        %d\n", st.ID)
	fmt.Fprintf(out, "title:     %s\n", st.Title)
	fmt.Fprintf(out, "equipment: %s\n", orDash(st.EquipmentName))
	fmt.Fprintf(out, "created:   %s\n", st.CreatedAt.Format(timeLayout))
	fmt.Fprintf(out, "updated:   %s\n", st.UpdatedAt.Format(timeLayout))
	for _, p := range st.ImagePaths {
		fmt.Fprintf(out, "image:     %s\n", p)
	}
	if st.Content != "" {
		fmt.Fprintf(out, "\n%s\n", st.Content)
	}
	return nil
}

func runSave(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	fs := newFlagSet("save")
	id := fs.Int64("id", 0, "record to edit (omit to create)")
	title := fs.String("title", "", "title (required for new records)")
	content := fs.String("content", "", "free-text notes")
	equipment := fs.String("equipment", "", "equipment name")
	var add, remove stringList
	fs.Var(&add, "image", "attach an image path (repeatable)")
	fs.Var(&remove, "remove-image", "detach an image path (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	vm := a.NewRecordDetail()
	if err := vm.Load(ctx, *id); err != nil {
		return err
	}
	if *id != 0 && vm.State().IsNewRecord {
		return fmt.Errorf("record %d: %w", *id, domain.ErrNotFound)
	}

	if isSet(fs, "title") {
		vm.SetTitle(*title)
	}
	if isSet(fs, "content") {
		vm.SetContent(*content)
	}
	if isSet(fs, "equipment") {
		vm.SetEquipmentName(*equipment)
	}
	for _, p := range add {
		vm.AddImage(p)
	}
	for _, p := range remove {
		vm.RemoveImage(p)
	}

	draft := vm.State()
	if err := domain.ValidateDraft(draft.Title, draft.ImagePaths); err != nil {
		return err
	}

	saved, err := vm.Save(ctx)
	if err != nil {
		return err
	}
	if !saved {
		return domain.NewValidationError("title", "required")
	}

	fmt.Fprintf(out, "saved record %d\n", vm.State().ID)
	return nil
}

func runDelete(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	fs := newFlagSet("delete")
	id := fs.Int64("id", 0, "record id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return domain.NewValidationError("id", "must be positive")
	}

	if err := a.Repository.DeleteRecordByID(ctx, *id); err != nil {
		return err
	}

	fmt.Fprintf(out, "deleted record %d\n", *id)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// stringList collects a repeatable string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func isSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
