package ipc

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"
)

// Client provides RPC access to the daemon.
type Client struct {
	conn   net.Conn
	client *rpc.Client
}

// Dial connects to the IPC server at the given socket path.
func Dial(path string) (*Client, error) {
	conn, err := net.DialTimeout("unix", path, 2*time.Second)
	if err != nil {
		return nil, err
	}
	rpcClient := rpc.NewClientWithCodec(jsonrpc.NewClientCodec(conn))
	return &Client{conn: conn, client: rpcClient}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.client != nil {
		_ = c.client.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func call[Req, Resp any](c *Client, method string, req Req) (*Resp, error) {
	var resp Resp
	if err := c.client.Call(ServiceName+"."+method, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Status retrieves the daemon status.
func (c *Client) Status() (*StatusResponse, error) {
	return call[StatusRequest, StatusResponse](c, "Status", StatusRequest{})
}

// Stop asks the daemon to shut down.
func (c *Client) Stop() (*StopResponse, error) {
	return call[StopRequest, StopResponse](c, "Stop", StopRequest{})
}

// Board returns the current board.
func (c *Client) Board() (*BoardResponse, error) {
	return call[BoardRequest, BoardResponse](c, "Board", BoardRequest{})
}

// SetQuery replaces the search text.
func (c *Client) SetQuery(query string) (*BoardResponse, error) {
	return call[SetQueryRequest, BoardResponse](c, "SetQuery", SetQueryRequest{Query: query})
}

// SelectCategory switches category.
func (c *Client) SelectCategory(category string) (*BoardResponse, error) {
	return call[SelectCategoryRequest, BoardResponse](c, "SelectCategory", SelectCategoryRequest{Category: category})
}

// JustAdded switches to newest-first ordering.
func (c *Client) JustAdded() (*BoardResponse, error) {
	return call[JustAddedRequest, BoardResponse](c, "JustAdded", JustAddedRequest{})
}

// Clear resets the filter.
func (c *Client) Clear() (*BoardResponse, error) {
	return call[ClearRequest, BoardResponse](c, "Clear", ClearRequest{})
}

// Home returns to the initial view.
func (c *Client) Home() (*BoardResponse, error) {
	return call[HomeRequest, BoardResponse](c, "Home", HomeRequest{})
}

// Play triggers a sound.
func (c *Client) Play(id string) (*PlayResponse, error) {
	return call[PlayRequest, PlayResponse](c, "Play", PlayRequest{ID: id})
}

// Upload adds a clip from a file on the daemon host.
func (c *Client) Upload(req UploadRequest) (*UploadResponse, error) {
	return call[UploadRequest, UploadResponse](c, "Upload", req)
}

// Login signs in or signs up.
func (c *Client) Login(req LoginRequest) (*LoginResponse, error) {
	return call[LoginRequest, LoginResponse](c, "Login", req)
}

// Install records the install hint and returns the board URL.
func (c *Client) Install() (*InstallResponse, error) {
	return call[InstallRequest, InstallResponse](c, "Install", InstallRequest{})
}
