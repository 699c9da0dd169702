package runtime

import (
	"context"
	"log/slog"
	"testing"

	"swipe-lab/contract"
	"swipe-lab/domain"
	"swipe-lab/mocks"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChannelManager_Names(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	manager := NewChannelManager(mocks.NewMockITransport(ctrl), logs.GetLoggerFromLevel(slog.LevelDebug))

	req.Equal("profiles_male", manager.Shared(domain.FilterMale).Name())
	req.Equal("profiles_all", manager.Shared(domain.FilterAll).Name())
	req.Equal("inbox_42", manager.Inbox("42").Name())
	req.Same(manager.Inbox("42"), manager.Inbox("42"))

	var names []string
	for _, c := range manager.SharedChannels() {
		names = append(names, c.Name())
	}
	req.Equal([]string{"profiles_male", "profiles_female", "profiles_all"}, names)
}

func TestChannel_ReplacePurgesThenPushes(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockITransport(ctrl)
	manager := NewChannelManager(transport, logs.GetLoggerFromLevel(slog.LevelDebug))
	ctx := context.Background()
	body := []byte("new snapshot")

	gomock.InOrder(
		transport.EXPECT().Purge(ctx, "profiles_all", gomock.Any()).Return(2, nil).Times(1),
		transport.EXPECT().Push(ctx, "profiles_all", body).Return(nil).Times(1),
	)

	removed, err := manager.Shared(domain.FilterAll).Replace(ctx, func([]byte) bool { return true }, body)
	req.NoError(err)
	req.Equal(2, removed)
}

func TestChannel_DelegatesSettlement(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockITransport(ctrl)
	manager := NewChannelManager(transport, logs.GetLoggerFromLevel(slog.LevelDebug))
	ctx := context.Background()
	d := &contract.Delivery{Channel: "inbox_7", Tag: "00000000000000000001"}

	transport.EXPECT().Pop(ctx, "inbox_7", "").Return(d, nil).Times(1)
	transport.EXPECT().Requeue(ctx, d).Return(nil).Times(1)

	inbox := manager.Inbox("7")
	got, err := inbox.Pop(ctx, "")
	req.NoError(err)
	req.Equal(d, got)
	req.NoError(inbox.Requeue(ctx, got))
}
