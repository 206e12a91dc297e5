package slack

import (
	"context"
	"strings"

	messageDomain "github.com/reshetovitsme/slack-ngword-monitor/internal/modules/message/domain"
	"github.com/reshetovitsme/slack-ngword-monitor/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
	"github.com/slack-go/slack"
)

// Client adapts the Slack Web API to the search, channel-info and post
// collaborators of the scan
type Client struct {
	api *slack.Client
}

// New creates a Slack client. apiURL overrides the Web API base URL when set.
func New(token, apiURL string) *Client {
	var opts []slack.Option
	if apiURL != "" {
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		opts = append(opts, slack.OptionAPIURL(apiURL))
	}
	return &Client{api: slack.New(token, opts...)}
}

// SearchMessages runs search.all and returns the message matches in the
// order Slack returned them.
func (c *Client) SearchMessages(ctx context.Context, query messageDomain.SearchQuery) ([]messageDomain.Message, error) {
	params := slack.NewSearchParameters()
	params.Sort = query.Sort
	params.SortDirection = query.SortDirection
	params.Count = query.Count

	messages, _, err := c.api.SearchContext(ctx, query.Query, params)
	if err != nil {
		return nil, oops.With("query", query.Query).Wrapf(errors.ErrSearchFailed, "%v", err)
	}
	if messages == nil || messages.Matches == nil {
		return nil, oops.With("query", query.Query).Wrap(errors.ErrMalformedSearch)
	}

	return lo.Map(messages.Matches, func(match slack.SearchMessage, _ int) messageDomain.Message {
		return toMessage(match)
	}), nil
}

// MemberCount returns the channel's member count from conversations.info
func (c *Client) MemberCount(ctx context.Context, channelID string) (int, error) {
	channel, err := c.api.GetConversationInfoContext(ctx, &slack.GetConversationInfoInput{
		ChannelID:         channelID,
		IncludeNumMembers: true,
	})
	if err != nil {
		return 0, oops.With("channel_id", channelID).Wrapf(errors.ErrChannelInfo, "%v", err)
	}
	if channel == nil {
		return 0, oops.With("channel_id", channelID).Wrap(errors.ErrChannelInfo)
	}
	return channel.NumMembers, nil
}

// PostAlert posts text to channelID with link names and unfurling enabled
func (c *Client) PostAlert(ctx context.Context, channelID, text string) error {
	params := slack.NewPostMessageParameters()
	params.LinkNames = 1
	params.UnfurlLinks = true
	params.UnfurlMedia = true

	_, _, err := c.api.PostMessageContext(ctx, channelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionPostMessageParameters(params),
	)
	if err != nil {
		return oops.With("channel_id", channelID).Wrap(err)
	}
	return nil
}

// toMessage maps a search hit. The search context channel carries no
// is_channel/is_im flags, so they are derived from the conversation ID:
// direct messages use a "D" prefix and public channels a "C" prefix.
func toMessage(match slack.SearchMessage) messageDomain.Message {
	id := match.Channel.ID
	isIM := strings.HasPrefix(id, "D")

	return messageDomain.Message{
		Channel: messageDomain.Channel{
			ID:        id,
			Name:      match.Channel.Name,
			IsChannel: strings.HasPrefix(id, "C") && !match.Channel.IsPrivate && !match.Channel.IsMPIM,
			IsIM:      isIM,
			IsPrivate: match.Channel.IsPrivate,
			IsMPIM:    match.Channel.IsMPIM,
		},
		Timestamp: match.Timestamp,
		UserID:    match.User,
		Username:  match.Username,
		Text:      match.Text,
		Permalink: match.Permalink,
	}
}
