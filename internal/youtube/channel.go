// File: internal/youtube/channel.go
package youtube

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"
)

const defaultChannelFeedEndpoint = "https://www.youtube.com/feeds/videos.xml"

// ChannelVideo is one upload from a channel's Atom feed.
type ChannelVideo struct {
	VideoID   string
	Title     string
	Published time.Time
}

// ChannelVideos lists a channel's latest uploads from its public Atom
// feed. No API key or search quota is spent on this path.
func (c *Client) ChannelVideos(ctx context.Context, channelID string) ([]ChannelVideo, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	feedURL := c.channelFeedEndpoint + "?channel_id=" + url.QueryEscape(channelID)

	parser := gofeed.NewParser()
	parser.Client = c.httpClient
	parser.UserAgent = userAgent

	start := time.Now()
	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		c.recorder.RecordOutboundRequest("youtube", 0)
		return nil, fmt.Errorf("ChannelVideos: %w", err)
	}
	c.recorder.RecordOutboundRequest("youtube", 200)
	c.recorder.RecordOutboundLatency("youtube", time.Since(start))

	videos := make([]ChannelVideo, 0, len(feed.Items))
	for _, item := range feed.Items {
		v := ChannelVideo{Title: item.Title}
		if ext, ok := item.Extensions["yt"]["videoId"]; ok && len(ext) > 0 {
			v.VideoID = ext[0].Value
		}
		if item.PublishedParsed != nil {
			v.Published = *item.PublishedParsed
		}
		if v.VideoID != "" {
			videos = append(videos, v)
		}
	}
	return videos, nil
}
