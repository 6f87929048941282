package api

// Sound is one visible board entry.
type Sound struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	Category      string `json:"category"`
	CategoryLabel string `json:"categoryLabel"`
	AddedRank     int    `json:"addedRank"`
	Color         string `json:"color"`
	Playing       bool   `json:"playing"`
	Pressed       bool   `json:"pressed"`
}

// FilterState mirrors the board's query, category, and ordering mode.
type FilterState struct {
	Query    string `json:"query"`
	Category string `json:"category"`
	Mode     string `json:"mode"`
}

// CategoryOption is a selectable category.
type CategoryOption struct {
	Tag   string `json:"tag"`
	Label string `json:"label"`
}

// Session identifies the signed-in user.
type Session struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// BoardView is the full render state of the board.
type BoardView struct {
	Filter           FilterState      `json:"filter"`
	Sounds           []Sound          `json:"sounds"`
	AnyVisible       bool             `json:"anyVisible"`
	FilterLabel      string           `json:"filterLabel,omitempty"`
	FilterBarVisible bool             `json:"filterBarVisible"`
	Categories       []CategoryOption `json:"categories"`
	Total            int              `json:"total"`
	Session          *Session         `json:"session,omitempty"`
	Notice           string           `json:"notice,omitempty"`
}

// DependencyStatus captures availability of an external dependency.
type DependencyStatus struct {
	Name        string `json:"name"`
	Command     string `json:"command"`
	Description string `json:"description"`
	Optional    bool   `json:"optional"`
	Available   bool   `json:"available"`
	Path        string `json:"path,omitempty"`
	Detail      string `json:"detail,omitempty"`
}

// DaemonStatus aggregates daemon runtime information for API consumers.
type DaemonStatus struct {
	Running      bool               `json:"running"`
	PID          int                `json:"pid"`
	APIBind      string             `json:"apiBind,omitempty"`
	SocketPath   string             `json:"socketPath"`
	LockFilePath string             `json:"lockFilePath"`
	LogPath      string             `json:"logPath,omitempty"`
	CatalogPath  string             `json:"catalogPath"`
	UploadDir    string             `json:"uploadDir"`
	Sounds       int                `json:"sounds"`
	Playing      []string           `json:"playing"`
	Dependencies []DependencyStatus `json:"dependencies"`
}

// Filter actions accepted by FilterRequest.Action.
const (
	FilterActionHome      = "home"
	FilterActionClear     = "clear"
	FilterActionJustAdded = "just-added"
)

// FilterRequest changes the board's filter. Action, when set, is applied
// first; Category and Query are then applied if present.
type FilterRequest struct {
	Action   string  `json:"action,omitempty"`
	Category *string `json:"category,omitempty"`
	Query    *string `json:"query,omitempty"`
	Mode     string  `json:"mode,omitempty"`
}

// PlayResponse reports the outcome of a play request.
type PlayResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Reason   string `json:"reason,omitempty"`
	WindowMS int64  `json:"windowMs,omitempty"`
}

// UploadResponse describes a newly added sound.
type UploadResponse struct {
	Sound  Sound  `json:"sound"`
	Notice string `json:"notice"`
}

// LoginRequest carries credentials for the simulated account service.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	SignUp   bool   `json:"signup,omitempty"`
}

// LoginResponse returns the new session.
type LoginResponse struct {
	Session Session `json:"session"`
	Notice  string  `json:"notice"`
}

// InstallResponse carries the install fallback text.
type InstallResponse struct {
	Message string `json:"message"`
	URL     string `json:"url,omitempty"`
}

// ErrorResponse is the body of every non-2xx HTTP reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusLine is one labelled row of status output.
type StatusLine struct {
	Label    string `json:"label"`
	Severity string `json:"severity"`
	Detail   string `json:"detail"`
}

// DependencySummary aggregates dependency readiness.
type DependencySummary struct {
	Total           int    `json:"total"`
	Available       int    `json:"available"`
	MissingRequired int    `json:"missingRequired"`
	MissingOptional int    `json:"missingOptional"`
	Severity        string `json:"severity"`
	Detail          string `json:"detail"`
}
