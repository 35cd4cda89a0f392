// Package tracker 追踪器客户端操作
//
// 面向驱动应用的三个操作：初始化、推进、读取状态。
// 负责构造请求负载与账户引用列表，并通过宿主提交。
package tracker

import (
	"context"

	"github.com/fbtracker/v1/client/core/wallet"
	"github.com/fbtracker/v1/internal/core/tracker/instruction"
	"github.com/fbtracker/v1/internal/core/tracker/state"
	log "github.com/fbtracker/v1/pkg/interfaces/infrastructure/log"
	rtif "github.com/fbtracker/v1/pkg/interfaces/runtime"
	"github.com/fbtracker/v1/pkg/types"
)

// Client 追踪器客户端
type Client struct {
	host      rtif.Host
	deriver   rtif.AddressDeriver
	programID types.Address
	logger    log.Logger
}

// NewClient 创建客户端
func NewClient(host rtif.Host, deriver rtif.AddressDeriver, programID types.Address, logger log.Logger) *Client {
	return &Client{
		host:      host,
		deriver:   deriver,
		programID: programID,
		logger:    logger,
	}
}

// TrackerAddress 返回本部署的追踪记录地址
func (c *Client) TrackerAddress() (types.Address, error) {
	addr, _, err := c.deriver.Derive(c.programID)
	return addr, err
}

// Initialize 初始化追踪器，payer为出资并签名的付款密钥
func (c *Client) Initialize(ctx context.Context, payer *wallet.Keypair) error {
	trackerAddr, err := c.TrackerAddress()
	if err != nil {
		return err
	}

	payload := instruction.InitializePayload()
	refs := instruction.BuildInitializeRefs(trackerAddr, payer.Address(), payer.Sign(payload))

	c.logger.Infof("提交初始化: 追踪记录 %s, 付款账户 %s", trackerAddr, payer.Address())
	return c.host.Submit(ctx, payload, refs)
}

// Advance 推进一个赛季
func (c *Client) Advance(ctx context.Context) error {
	trackerAddr, err := c.TrackerAddress()
	if err != nil {
		return err
	}

	payload := instruction.AdvancePayload()
	refs := instruction.BuildAdvanceRefs(trackerAddr)

	return c.host.Submit(ctx, payload, refs)
}

// ReadState 读取并解码当前追踪记录
func (c *Client) ReadState(ctx context.Context) (*types.TrackerRecord, error) {
	trackerAddr, err := c.TrackerAddress()
	if err != nil {
		return nil, err
	}

	account, err := c.host.Account(ctx, trackerAddr)
	if err != nil {
		return nil, err
	}
	return state.Decode(account.Data)
}
