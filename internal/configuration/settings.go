package configuration

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// DefaultConfigFile is read when no configuration file is given and it
	// exists.
	DefaultConfigFile = "/etc/odcat.conf"

	// SettingBufferMultiplier is the number of alignment units per transfer.
	SettingBufferMultiplier = "ODCAT_BUFFER_MULTIPLIER"

	// SettingDefaultAlignment is the alignment used when the filesystem block
	// size cannot be established.
	SettingDefaultAlignment = "ODCAT_DEFAULT_ALIGNMENT"

	// SettingFallbackBufferSize is the transfer size used together with
	// [SettingDefaultAlignment].
	SettingFallbackBufferSize = "ODCAT_FALLBACK_BUFFER_SIZE"

	// SettingDropCache toggles page cache eviction for buffered transfers.
	SettingDropCache = "ODCAT_DROP_CACHE"

	// SettingTimePrecision is the unit to which timestamps are truncated when
	// set and compared, as a Go duration string (e.g. "1us").
	SettingTimePrecision = "ODCAT_TIME_PRECISION"

	// SettingXattrInitialSize is the starting buffer size for extended
	// attribute retrieval.
	SettingXattrInitialSize = "ODCAT_XATTR_INITIAL_SIZE"

	// SettingXattrSizeStep is the fixed increment by which the extended
	// attribute buffer grows.
	SettingXattrSizeStep = "ODCAT_XATTR_SIZE_STEP"

	// SettingXattrMaxSize is the largest extended attribute buffer tried.
	SettingXattrMaxSize = "ODCAT_XATTR_MAX_SIZE"
)

//nolint:gochecknoglobals
var settingKeys = []string{
	SettingBufferMultiplier,
	SettingDefaultAlignment,
	SettingFallbackBufferSize,
	SettingDropCache,
	SettingTimePrecision,
	SettingXattrInitialSize,
	SettingXattrSizeStep,
	SettingXattrMaxSize,
}

// Settings holds all tunables of the application.
type Settings struct {
	BufferMultiplier   int
	DefaultAlignment   int
	FallbackBufferSize int
	DropCache          bool
	TimePrecision      time.Duration
	XattrInitialSize   int
	XattrSizeStep      int
	XattrMaxSize       int
}

// DefaultSettings returns a pointer to [Settings] holding the defaults.
func DefaultSettings() *Settings {
	return &Settings{
		BufferMultiplier:   32,        //nolint:mnd
		DefaultAlignment:   512,       //nolint:mnd
		FallbackBufferSize: 64 * 1024, //nolint:mnd
		DropCache:          true,
		TimePrecision:      time.Microsecond,
		XattrInitialSize:   1024,      //nolint:mnd
		XattrSizeStep:      1024,      //nolint:mnd
		XattrMaxSize:       64 * 1024, //nolint:mnd
	}
}

// ConfigFiles returns the configuration files to read: the explicitly given
// file, or otherwise [DefaultConfigFile] if it exists.
func ConfigFiles(explicit string) []string {
	if explicit != "" {
		return []string{explicit}
	}

	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return []string{DefaultConfigFile}
	}

	return nil
}

// LoadSettings reads the given configuration files (if any), overlays the
// environment and returns the resulting [Settings]. Keys not set anywhere keep
// their defaults.
func (c *Handler) LoadSettings(filenames ...string) (*Settings, error) {
	envMap := make(map[string]string)

	if len(filenames) > 0 {
		fileMap, err := c.ReadGeneric(filenames...)
		if err != nil {
			return nil, fmt.Errorf("(config-load) failed to read: %w", err)
		}
		for k, v := range fileMap {
			envMap[k] = v
		}
	}

	if c.EnvHandler != nil {
		for _, key := range settingKeys {
			if value, ok := c.EnvHandler.LookupEnv(key); ok {
				envMap[key] = value
			}
		}
	}

	settings, err := c.parseSettings(envMap)
	if err != nil {
		return nil, fmt.Errorf("(config-load) %w", err)
	}

	return settings, nil
}

func (c *Handler) parseSettings(envMap map[string]string) (*Settings, error) {
	s := DefaultSettings()

	var err error

	if s.BufferMultiplier, err = c.positiveInt(envMap, SettingBufferMultiplier, s.BufferMultiplier); err != nil {
		return nil, err
	}
	if s.DefaultAlignment, err = c.positiveInt(envMap, SettingDefaultAlignment, s.DefaultAlignment); err != nil {
		return nil, err
	}
	if s.FallbackBufferSize, err = c.positiveInt(envMap, SettingFallbackBufferSize, s.FallbackBufferSize); err != nil {
		return nil, err
	}
	if s.FallbackBufferSize%s.DefaultAlignment != 0 {
		return nil, fmt.Errorf("%w: %d %% %d != 0", ErrMisaligned, s.FallbackBufferSize, s.DefaultAlignment)
	}
	if s.DropCache, err = c.boolean(envMap, SettingDropCache, s.DropCache); err != nil {
		return nil, err
	}
	if s.TimePrecision, err = c.duration(envMap, SettingTimePrecision, s.TimePrecision); err != nil {
		return nil, err
	}
	if s.XattrInitialSize, err = c.positiveInt(envMap, SettingXattrInitialSize, s.XattrInitialSize); err != nil {
		return nil, err
	}
	if s.XattrSizeStep, err = c.positiveInt(envMap, SettingXattrSizeStep, s.XattrSizeStep); err != nil {
		return nil, err
	}
	if s.XattrMaxSize, err = c.positiveInt(envMap, SettingXattrMaxSize, s.XattrMaxSize); err != nil {
		return nil, err
	}
	if s.XattrMaxSize < s.XattrInitialSize {
		return nil, fmt.Errorf("%w: %s (%d) < %s (%d)", ErrOutOfRange,
			SettingXattrMaxSize, s.XattrMaxSize, SettingXattrInitialSize, s.XattrInitialSize)
	}

	return s, nil
}

func (c *Handler) positiveInt(envMap map[string]string, key string, def int) (int, error) {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return def, nil
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value)
	}
	if intValue <= 0 {
		return 0, fmt.Errorf("%w: %s=%d (must be > 0)", ErrOutOfRange, key, intValue)
	}

	return intValue, nil
}

func (c *Handler) boolean(envMap map[string]string, key string, def bool) (bool, error) {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return def, nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value)
	}

	return boolValue, nil
}

func (c *Handler) duration(envMap map[string]string, key string, def time.Duration) (time.Duration, error) {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return def, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value)
	}
	if d <= 0 || d > time.Second {
		return 0, fmt.Errorf("%w: %s=%s (must be within (0, 1s])", ErrOutOfRange, key, d)
	}

	return d, nil
}
