package main

import (
	"github.com/spf13/cobra"

	"github.com/kashyap-thakar/directus-extension-discord-operation/internal/operation"
)

// optionFlags maps per-field flags to option keys.
var optionFlags = []struct {
	flag, key, usage string
}{
	{"channel", "channelId", "Discord channel ID or thread ID"},
	{"type", "messageType", "message type: simple or embed"},
	{"message", "message", "content for simple messages"},
	{"template", "embedTemplate", "embed template: basic, success, error, info"},
	{"title", "embedTitle", "embed title"},
	{"description", "embedDescription", "embed description"},
	{"author-name", "embedAuthorName", "embed author name"},
	{"author-icon", "embedAuthorIcon", "embed author icon URL"},
	{"author-url", "embedAuthorUrl", "embed author URL"},
	{"thumbnail", "embedThumbnail", "embed thumbnail URL"},
	{"image", "embedImage", "embed main image URL"},
	{"footer-text", "embedFooterText", "embed footer text"},
	{"footer-icon", "embedFooterIcon", "embed footer icon URL"},
	{"fields", "embedFields", `embed fields as a JSON array, e.g. [{"name":"A","value":"B","inline":true}]`},
	{"token", "token", "bot token (default from config or DISCORDOP_DISCORD_TOKEN)"},
}

type optionInput struct {
	file string
	set  []string
}

func addOptionFlags(cmd *cobra.Command, in *optionInput) {
	f := cmd.Flags()
	f.StringVar(&in.file, "options", "", "JSON options document, - for stdin")
	f.StringArrayVar(&in.set, "set", nil, "override an option, key=value (repeatable)")
	for _, of := range optionFlags {
		f.String(of.flag, "", of.usage)
	}
	f.Bool("timestamp", false, "add the current timestamp to the embed")
}

// resolveOptions merges the options document, explicitly set flags and
// --set overrides, in that order, then fills the token from config.
func (a *app) resolveOptions(cmd *cobra.Command, in *optionInput) (operation.Options, error) {
	doc, err := readOptionsFile(in.file, cmd.InOrStdin())
	if err != nil {
		return operation.Options{}, err
	}

	var overrides []operation.Override
	f := cmd.Flags()
	for _, of := range optionFlags {
		if f.Changed(of.flag) {
			overrides = append(overrides, operation.Override{Key: of.key, Value: f.Lookup(of.flag).Value.String()})
		}
	}
	if f.Changed("timestamp") {
		overrides = append(overrides, operation.Override{Key: "embedTimestamp", Value: f.Lookup("timestamp").Value.String()})
	}
	for _, s := range in.set {
		o, err := operation.ParseOverride(s)
		if err != nil {
			return operation.Options{}, err
		}
		overrides = append(overrides, o)
	}

	opts, err := operation.DecodeOptions(doc, overrides...)
	if err != nil {
		return operation.Options{}, err
	}
	if opts.Token == "" && a.cfg != nil {
		opts.Token = a.cfg.Discord.Token
	}
	return opts, nil
}
