package appsync

// AuthenticationType names an AppSync authorization mode.
type AuthenticationType string

// Authorization modes.
const (
	AuthAPIKey           AuthenticationType = "API_KEY"
	AuthIAM              AuthenticationType = "AWS_IAM"
	AuthCognitoUserPools AuthenticationType = "AMAZON_COGNITO_USER_POOLS"
	AuthOpenIDConnect    AuthenticationType = "OPENID_CONNECT"
	AuthLambda           AuthenticationType = "AWS_LAMBDA"
)

// AuthSpec is a declared authorization mode.
type AuthSpec struct {
	AuthenticationType  AuthenticationType   `json:"authenticationType,omitempty" yaml:"authenticationType,omitempty"`
	UserPoolConfig      *UserPoolConfig      `json:"userPoolConfig,omitempty" yaml:"userPoolConfig,omitempty"`
	OpenIDConnectConfig *OpenIDConnectConfig `json:"openIdConnectConfig,omitempty" yaml:"openIdConnectConfig,omitempty"`
}

// UserPoolConfig is the declared Cognito user pool block.
type UserPoolConfig struct {
	AppIDClientRegex string `json:"appIdClientRegex,omitempty" yaml:"appIdClientRegex,omitempty"`
	UserPoolID       string `json:"userPoolId,omitempty" yaml:"userPoolId,omitempty"`
	AwsRegion        string `json:"awsRegion,omitempty" yaml:"awsRegion,omitempty"`
	DefaultAction    string `json:"defaultAction,omitempty" yaml:"defaultAction,omitempty"`
}

// OpenIDConnectConfig is the declared OIDC block.
type OpenIDConnectConfig struct {
	Issuer   string `json:"issuer,omitempty" yaml:"issuer,omitempty"`
	ClientID string `json:"clientId,omitempty" yaml:"clientId,omitempty"`
	IatTTL   int    `json:"iatTTL,omitempty" yaml:"iatTTL,omitempty"`
	AuthTTL  int    `json:"authTTL,omitempty" yaml:"authTTL,omitempty"`
}

// AuthConfig is the canonical authorization descriptor. The nested key casing
// is what the simulator expects.
type AuthConfig struct {
	AuthenticationType    AuthenticationType     `json:"authenticationType" yaml:"authenticationType"`
	CognitoUserPoolConfig *CognitoUserPoolConfig `json:"cognitoUserPoolConfig,omitempty" yaml:"cognitoUserPoolConfig,omitempty"`
	OpenIDConnectConfig   *OIDCConfig            `json:"openIDConnectConfig,omitempty" yaml:"openIDConnectConfig,omitempty"`
}

// CognitoUserPoolConfig is the canonical Cognito block.
type CognitoUserPoolConfig struct {
	AppIDClientRegex string `json:"AppIdClientRegex" yaml:"AppIdClientRegex"`
}

// OIDCConfig is the canonical OIDC block.
type OIDCConfig struct {
	Issuer   string `json:"Issuer" yaml:"Issuer"`
	ClientID string `json:"ClientId" yaml:"ClientId"`
}

// AppSyncConfig is the API-level block of the canonical configuration.
type AppSyncConfig struct {
	Name                              string       `json:"name" yaml:"name"`
	APIKey                            string       `json:"apiKey" yaml:"apiKey"`
	DefaultAuthenticationType         AuthConfig   `json:"defaultAuthenticationType" yaml:"defaultAuthenticationType"`
	AdditionalAuthenticationProviders []AuthConfig `json:"additionalAuthenticationProviders" yaml:"additionalAuthenticationProviders"`
}

// BuildAuth maps a declared authorization mode. A Cognito or OIDC mode
// without its config block yields an empty nested block.
func BuildAuth(spec AuthSpec) AuthConfig {
	auth := AuthConfig{AuthenticationType: spec.AuthenticationType}

	switch spec.AuthenticationType {
	case AuthCognitoUserPools:
		cognito := &CognitoUserPoolConfig{}
		if spec.UserPoolConfig != nil {
			cognito.AppIDClientRegex = spec.UserPoolConfig.AppIDClientRegex
		}
		auth.CognitoUserPoolConfig = cognito
	case AuthOpenIDConnect:
		oidc := &OIDCConfig{}
		if spec.OpenIDConnectConfig != nil {
			oidc.Issuer = spec.OpenIDConnectConfig.Issuer
			oidc.ClientID = spec.OpenIDConnectConfig.ClientID
		}
		auth.OpenIDConnectConfig = oidc
	}
	return auth
}

// BuildAppSync builds the API-level block.
func BuildAppSync(cfg *RawConfig, apiKey string) AppSyncConfig {
	additional := make([]AuthConfig, 0, len(cfg.AdditionalAuthenticationProviders))
	for _, spec := range cfg.AdditionalAuthenticationProviders {
		additional = append(additional, BuildAuth(spec))
	}
	return AppSyncConfig{
		Name:                              cfg.Name,
		APIKey:                            apiKey,
		DefaultAuthenticationType:         BuildAuth(cfg.AuthSpec),
		AdditionalAuthenticationProviders: additional,
	}
}
