// Package wire defines the on-the-wire record shapes exchanged with an
// external supervisor (PLC, MES, simulation environment). Field names follow
// the reference field-bus object tree so a transport can marshal them
// without any further translation.
package wire

// Parameter is a single named value passed to or returned from a skill.
// All values are stringly typed on the wire; coercion happens in user code.
type Parameter struct {
	Name        string `json:"strName" yaml:"name"`
	Value       string `json:"strValue" yaml:"value"`
	Unit        string `json:"strUnit" yaml:"unit"`
	Description string `json:"strDescr" yaml:"description"`
}

// StateCommands holds the ten edge-triggered state command pulses.
type StateCommands struct {
	Reset    bool `json:"Reset"`
	Start    bool `json:"Start"`
	Stop     bool `json:"Stop"`
	Hold     bool `json:"Hold"`
	Unhold   bool `json:"Unhold"`
	Pause    bool `json:"Pause"`
	Resume   bool `json:"Resume"`
	Abort    bool `json:"Abort"`
	Restart  bool `json:"Restart"`
	Complete bool `json:"Complete"`
}

// ModeCommands holds the four edge-triggered mode command pulses.
type ModeCommands struct {
	Offline           bool `json:"Offline"`
	Operator          bool `json:"Operator"`
	AutomaticInternal bool `json:"Automatic_Internal"`
	AutomaticExternal bool `json:"Automatic_External"`
}

// CommandEnabled mirrors StateCommands, declaring which commands the
// current state accepts.
type CommandEnabled struct {
	Reset    bool `json:"Reset"`
	Start    bool `json:"Start"`
	Stop     bool `json:"Stop"`
	Hold     bool `json:"Hold"`
	Unhold   bool `json:"Unhold"`
	Pause    bool `json:"Pause"`
	Resume   bool `json:"Resume"`
	Abort    bool `json:"Abort"`
	Restart  bool `json:"Restart"`
	Complete bool `json:"Complete"`
}

// SkillCommandRecord is the writable stSkillCommand object.
type SkillCommandRecord struct {
	State         StateCommands `json:"stCommand_State"`
	Mode          ModeCommands  `json:"stCommand_Mode"`
	StateComplete bool          `json:"StateComplete"`
}

// SkillStateRecord is the read-only stSkillState object.
type SkillStateRecord struct {
	ActiveMode       int            `json:"eActiveMode"`
	ActiveModeStr    string         `json:"strActiveMode"`
	ActiveState      int            `json:"eActiveState"`
	ActiveStateStr   string         `json:"strActiveState"`
	ActiveCommand    int            `json:"eActiveCommand"`
	ActiveCommandStr string         `json:"strActiveCommand"`
	Error            bool           `json:"bError"`
	ErrorID          uint32         `json:"udiErrorID"`
	ErrorMessage     string         `json:"strErrorMsg"`
	CommandEnabled   CommandEnabled `json:"stCommandEnabled"`
}

// SkillDataDefaultRecord is the read-only stSkillDataDefault object.
type SkillDataDefaultRecord struct {
	Name           string      `json:"strName"`
	Type           string      `json:"strType"`
	Description    string      `json:"strDescription"`
	ParameterCount int         `json:"iParameterCount"`
	Parameters     []Parameter `json:"astParameters"`
}

// SkillDataCommandRecord is the writable stSkillDataCommand object, same
// shape as SkillDataDefaultRecord.
type SkillDataCommandRecord struct {
	Name           string      `json:"strName"`
	Type           string      `json:"strType"`
	Description    string      `json:"strDescription"`
	ParameterCount int         `json:"iParameterCount"`
	Parameters     []Parameter `json:"astParameters"`
}
