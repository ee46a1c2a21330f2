package generator

// Pattern kinds. Most credential shapes are a fixed prefix plus a random
// body; a few need more structure than that.
const (
	// KindRandom draws Length characters from Alphabet after Prefix
	KindRandom = "random"
	// KindUUID emits a random UUID, Prefix-first
	KindUUID = "uuid"
	// KindJWT emits a structurally valid JSON Web Token
	KindJWT = "jwt"
	// KindDBURL emits a database connection URL with embedded credentials
	KindDBURL = "dburl"
)

const (
	alphaNum      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	upperNum      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	base64Chars   = alphaNum + "+/="
	urlSafeChars  = alphaNum + "-_"
	passwordChars = alphaNum + "!@#$%^&*"
)

// Pattern describes how to synthesize one credential type.
type Pattern struct {
	// Kind selects the synthesis strategy (defaults to KindRandom)
	Kind string `yaml:"kind,omitempty" json:"kind,omitempty"`

	// Prefix is prepended verbatim to the generated body
	Prefix string `yaml:"prefix,omitempty" json:"prefix,omitempty"`

	// Alphabet is the character set the random body is drawn from
	Alphabet string `yaml:"alphabet,omitempty" json:"alphabet,omitempty"`

	// Length is the number of random body characters
	Length int `yaml:"length,omitempty" json:"length,omitempty"`
}

// builtinPatterns mirrors the credential shapes real services hand out, so
// generated values satisfy the scanners and validators pointed at them.
func builtinPatterns() map[string]Pattern {
	return map[string]Pattern{
		"api_key":           {Kind: KindRandom, Alphabet: alphaNum, Length: 32},
		"password":          {Kind: KindRandom, Alphabet: passwordChars, Length: 16},
		"aws_access_key":    {Kind: KindRandom, Prefix: "AKIA", Alphabet: upperNum, Length: 16},
		"aws_secret_key":    {Kind: KindRandom, Alphabet: base64Chars, Length: 40},
		"azure_client_id":   {Kind: KindUUID},
		"google_api_key":    {Kind: KindRandom, Prefix: "AIza", Alphabet: urlSafeChars, Length: 35},
		"openai_api_key":    {Kind: KindRandom, Prefix: "sk-", Alphabet: alphaNum, Length: 48},
		"anthropic_api_key": {Kind: KindRandom, Prefix: "sk-ant-", Alphabet: alphaNum, Length: 48},
		"huggingface_token": {Kind: KindRandom, Prefix: "hf_", Alphabet: alphaNum, Length: 34},
		"github_token":      {Kind: KindRandom, Prefix: "ghp_", Alphabet: alphaNum, Length: 36},
		"gitlab_token":      {Kind: KindRandom, Prefix: "glpat-", Alphabet: urlSafeChars, Length: 20},
		"slack_bot_token":   {Kind: KindRandom, Prefix: "xoxb-", Alphabet: alphaNum, Length: 48},
		"stripe_secret_key": {Kind: KindRandom, Prefix: "sk_test_", Alphabet: alphaNum, Length: 24},
		"sendgrid_api_key":  {Kind: KindRandom, Prefix: "SG.", Alphabet: urlSafeChars, Length: 66},
		"npm_token":         {Kind: KindRandom, Prefix: "npm_", Alphabet: urlSafeChars, Length: 36},
		"vault_token":       {Kind: KindRandom, Prefix: "hvs.", Alphabet: urlSafeChars, Length: 24},
		"consul_token":      {Kind: KindUUID},
		"jwt_token":         {Kind: KindJWT},
		"db_connection":     {Kind: KindDBURL},
	}
}
