package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"swipe-lab/domain"
	"swipe-lab/sink"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

var (
	profileFlags struct {
		id       string
		username string
		name     string
		age      int
		city     string
		bio      string
		seeking  string
		gender   string
		filter   string
		photo    string
	}
	viewer       string
	viewerFilter string
	viewerCity   string
	photoOut     string
	swipeFrom    string
	swipeTo      string
	dislike      bool

	publishCmd = &cobra.Command{
		Use:     "publish",
		Short:   "Save a profile and publish it to the shared channels",
		PreRunE: openEngine,
		RunE:    runPublish,
	}
	nextCmd = &cobra.Command{
		Use:     "next",
		Short:   "Show the next profile of a viewer's feed",
		PreRunE: openEngine,
		RunE:    runNext,
	}
	swipeCmd = &cobra.Command{
		Use:     "swipe",
		Short:   "Like (or --dislike) a profile and deliver the resulting notifications",
		PreRunE: openEngine,
		RunE:    runSwipe,
	}
	resetCmd = &cobra.Command{
		Use:     "reset",
		Short:   "Forget which profiles a viewer has already seen",
		PreRunE: openEngine,
		RunE:    runReset,
	}
	depthCmd = &cobra.Command{
		Use:     "depth",
		Short:   "Print the ready messages of every shared channel",
		PreRunE: openEngine,
		RunE:    runDepth,
	}
	dispatchCmd = &cobra.Command{
		Use:     "dispatch",
		Short:   "Deliver pending notifications to this terminal",
		PreRunE: openEngine,
		RunE:    runDispatch,
	}
)

func init() {
	f := publishCmd.Flags()
	f.StringVar(&profileFlags.id, "id", "", "user id")
	f.StringVar(&profileFlags.username, "username", "", "chat handle, without @")
	f.StringVar(&profileFlags.name, "name", "", "display name")
	f.IntVar(&profileFlags.age, "age", 0, "age")
	f.StringVar(&profileFlags.city, "city", "", "city")
	f.StringVar(&profileFlags.bio, "bio", "", "about me")
	f.StringVar(&profileFlags.seeking, "seeking", "", "what the user is looking for")
	f.StringVar(&profileFlags.gender, "gender", "", "male or female")
	f.StringVar(&profileFlags.filter, "filter", "all", "who the user wants to see: male, female or all")
	f.StringVar(&profileFlags.photo, "photo", "", "image file uploaded to the photo store")
	_ = publishCmd.MarkFlagRequired("id")
	_ = publishCmd.MarkFlagRequired("photo")

	nextCmd.Flags().StringVar(&viewer, "viewer", "", "viewer id")
	nextCmd.Flags().StringVar(&viewerFilter, "filter", "", "gender filter, defaults to the viewer's own")
	nextCmd.Flags().StringVar(&viewerCity, "city", "", "viewer city, defaults to the viewer's own")
	nextCmd.Flags().StringVar(&photoOut, "out", "", "write the photo to this file")
	_ = nextCmd.MarkFlagRequired("viewer")

	swipeCmd.Flags().StringVar(&swipeFrom, "from", "", "swiping user")
	swipeCmd.Flags().StringVar(&swipeTo, "to", "", "profile owner")
	swipeCmd.Flags().BoolVar(&dislike, "dislike", false, "record a dislike instead of a like")
	_ = swipeCmd.MarkFlagRequired("from")
	_ = swipeCmd.MarkFlagRequired("to")

	resetCmd.Flags().StringVar(&viewer, "viewer", "", "viewer id")
	_ = resetCmd.MarkFlagRequired("viewer")
}

func runPublish(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	gender, err := domain.ParseGender(profileFlags.gender)
	if err != nil {
		return err
	}
	filter, err := domain.ParseGenderFilter(profileFlags.filter)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(profileFlags.photo)
	if err != nil {
		return err
	}
	ref, err := current.stack.Engine.Profiles.UploadPhoto(ctx, data)
	if err != nil {
		return err
	}

	saved, err := current.stack.Engine.SaveProfile(ctx, domain.Profile{
		ID:           profileFlags.id,
		Username:     profileFlags.username,
		Name:         profileFlags.name,
		Age:          profileFlags.age,
		City:         profileFlags.city,
		Bio:          profileFlags.bio,
		Seeking:      profileFlags.seeking,
		PhotoRef:     ref,
		Gender:       gender,
		GenderFilter: filter,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "published %s version %d photo %s\n", saved.ID, saved.Version, saved.PhotoRef)
	return nil
}

func runNext(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	filter, city, err := viewerPreferences(cmd)
	if err != nil {
		return err
	}

	card, err := current.stack.Engine.Next(ctx, viewer, filter, city)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if card == nil {
		fmt.Fprintln(out, color.FgYellow.Render("No profiles right now, try again later"))
		return nil
	}

	table := newTable(out, []string{"Field", "Value"})
	table.AppendBulk([][]string{
		{"Source", card.Source},
		{"ID", card.Profile.ID},
		{"Name", card.Profile.Name},
		{"Age", strconv.Itoa(card.Profile.Age)},
		{"City", card.Profile.City},
		{"Photo", fmt.Sprintf("%s (%s, %d bytes)", card.Profile.PhotoRef, card.MimeType, len(card.Photo))},
	})
	table.Render()
	fmt.Fprintln(out)
	fmt.Fprintln(out, card.Caption)

	if photoOut != "" {
		return os.WriteFile(photoOut, card.Photo, 0o644)
	}
	return nil
}

// viewerPreferences fills the unset flags from the stored profile of the viewer.
func viewerPreferences(cmd *cobra.Command) (domain.GenderFilter, string, error) {
	if viewerFilter != "" && cmd.Flags().Changed("city") {
		filter, err := domain.ParseGenderFilter(viewerFilter)
		return filter, viewerCity, err
	}
	p, err := current.stack.Engine.Profiles.Get(cmd.Context(), viewer)
	if err != nil {
		return "", "", fmt.Errorf("viewer %s: %w", viewer, err)
	}
	filter, city := p.GenderFilter, p.City
	if viewerFilter != "" {
		if filter, err = domain.ParseGenderFilter(viewerFilter); err != nil {
			return "", "", err
		}
	}
	if cmd.Flags().Changed("city") {
		city = viewerCity
	}
	return filter, city, nil
}

func runSwipe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	outcome, err := current.stack.Engine.Swipe(ctx, swipeFrom, swipeTo, !dislike)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s: %s\n", swipeFrom, swipeTo, outcome)
	return dispatch(cmd)
}

func runReset(cmd *cobra.Command, _ []string) error {
	n, err := current.stack.Engine.Reset(cmd.Context(), viewer)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "forgot %d seen profiles for %s\n", n, viewer)
	return nil
}

func runDepth(cmd *cobra.Command, _ []string) error {
	depths, err := current.stack.Engine.Depths(cmd.Context())
	if err != nil {
		return err
	}
	names := make([]string, 0, len(depths))
	for name := range depths {
		names = append(names, name)
	}
	sort.Strings(names)

	table := newTable(cmd.OutOrStdout(), []string{"Channel", "Ready"})
	for _, name := range names {
		table.Append([]string{name, strconv.Itoa(depths[name])})
	}
	table.Render()
	return nil
}

func runDispatch(cmd *cobra.Command, _ []string) error {
	return dispatch(cmd)
}

// dispatch drains the outbox once into the terminal.
func dispatch(cmd *cobra.Command) error {
	d := current.stack.Dispatcher(current.config, sink.NewConsoleSink(cmd.OutOrStdout()))
	_, err := d.DispatchOnce(cmd.Context())
	return err
}
