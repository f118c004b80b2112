package webue

// PlmnID identifies the home network.
type PlmnID struct {
	Mcc string `json:"mcc" yaml:"mcc"`
	Mnc string `json:"mnc" yaml:"mnc"`
}

// Snssai is a network slice selector.
type Snssai struct {
	Sst int    `json:"sst" yaml:"sst"`
	Sd  string `json:"sd,omitempty" yaml:"sd,omitempty"`
}

type Integrity struct {
	IA1 bool `json:"IA1" yaml:"IA1"`
	IA2 bool `json:"IA2" yaml:"IA2"`
	IA3 bool `json:"IA3" yaml:"IA3"`
}

type Ciphering struct {
	EA1 bool `json:"EA1" yaml:"EA1"`
	EA2 bool `json:"EA2" yaml:"EA2"`
	EA3 bool `json:"EA3" yaml:"EA3"`
}

type UacAic struct {
	Mps bool `json:"mps" yaml:"mps"`
	Mcs bool `json:"mcs" yaml:"mcs"`
}

type UacAcc struct {
	NormalClass int  `json:"normalClass" yaml:"normalClass"`
	Class11     bool `json:"class11" yaml:"class11"`
	Class12     bool `json:"class12" yaml:"class12"`
	Class13     bool `json:"class13" yaml:"class13"`
	Class14     bool `json:"class14" yaml:"class14"`
	Class15     bool `json:"class15" yaml:"class15"`
}

type Session struct {
	Type  string `json:"type" yaml:"type"`
	Apn   string `json:"apn" yaml:"apn"`
	Slice Snssai `json:"slice" yaml:"slice"`
}

type IntegrityMaxRate struct {
	Uplink   string `json:"uplink" yaml:"uplink"`
	Downlink string `json:"downlink" yaml:"downlink"`
}

// UeProfile is a subscriber profile as stored by the backend. Field names
// follow the UE configuration file layout so a profile can be written out
// as YAML unchanged.
type UeProfile struct {
	Supi                   string           `json:"supi" yaml:"supi"`
	Mcc                    string           `json:"mcc" yaml:"mcc"`
	Mnc                    string           `json:"mnc" yaml:"mnc"`
	ProtectionScheme       int              `json:"protectionScheme" yaml:"protectionScheme"`
	HomeNetworkPublicKey   string           `json:"homeNetworkPublicKey" yaml:"homeNetworkPublicKey"`
	HomeNetworkPublicKeyID int              `json:"homeNetworkPublicKeyId" yaml:"homeNetworkPublicKeyId"`
	RoutingIndicator       string           `json:"routingIndicator" yaml:"routingIndicator"`
	Key                    string           `json:"key" yaml:"key"`
	Op                     string           `json:"op" yaml:"op"`
	OpType                 string           `json:"opType" yaml:"opType"`
	Amf                    string           `json:"amf" yaml:"amf"`
	Imei                   string           `json:"imei" yaml:"imei"`
	ImeiSv                 string           `json:"imeiSv" yaml:"imeiSv"`
	GnbSearchList          []string         `json:"gnbSearchList" yaml:"gnbSearchList"`
	UacAic                 UacAic           `json:"uacAic" yaml:"uacAic"`
	UacAcc                 UacAcc           `json:"uacAcc" yaml:"uacAcc"`
	Sessions               []Session        `json:"sessions" yaml:"sessions"`
	ConfiguredNssai        []Snssai         `json:"configured-nssai" yaml:"configured-nssai"`
	DefaultNssai           []Snssai         `json:"default-nssai" yaml:"default-nssai"`
	Integrity              Integrity        `json:"integrity" yaml:"integrity"`
	Ciphering              Ciphering        `json:"ciphering" yaml:"ciphering"`
	IntegrityMaxRate       IntegrityMaxRate `json:"integrityMaxRate" yaml:"integrityMaxRate"`
}

// GenerateRequest asks the backend to create NumUEs profiles for one operator setup.
type GenerateRequest struct {
	NumUEs            int       `json:"num_ues" yaml:"num_ues"`
	PlmnID            PlmnID    `json:"plmnid" yaml:"plmnid"`
	UeConfiguredNssai []Snssai  `json:"ueConfiguredNssai" yaml:"ueConfiguredNssai"`
	UeDefaultNssai    []Snssai  `json:"ueDefaultNssai" yaml:"ueDefaultNssai"`
	Integrity         Integrity `json:"integrity" yaml:"integrity"`
	Ciphering         Ciphering `json:"ciphering" yaml:"ciphering"`
	UacAic            UacAic    `json:"uacAic" yaml:"uacAic"`
	UacAcc            UacAcc    `json:"uacAcc" yaml:"uacAcc"`
}

// GenerateResult is the backend's answer to a GenerateRequest.
type GenerateResult struct {
	Message   string      `json:"message"`
	Profiles  []UeProfile `json:"profiles"`
	YAMLFiles []string    `json:"yaml_files"`
}
