package constants

// LibraryName contains the name of this library
const LibraryName = "roblox-install"

// LibraryNamespace is the namespace that the library belongs to
const LibraryNamespace = "github.com/jiwonz/"

// CommandName holds the name of our command
const CommandName = "roblox-locate"

// InternalConfigNamespace holds the appdata folder name under which we store our config
const InternalConfigNamespace = "roblox-install"

// InternalConfigFileName is the name of the file that holds the CLI preferences
const InternalConfigFileName = "config.yaml"

// ConfigEnvVarName is the env var used to override the config dir that the CLI uses
const ConfigEnvVarName = "ROBLOX_LOCATE_CONFIGDIR"

// StudioPathEnvVarName is the env var used to override where Roblox Studio is looked up, bypassing all
// platform-specific discovery
const StudioPathEnvVarName = "ROBLOX_STUDIO_PATH"

// VerboseEnvVarName is the env var used to enable verbose logging
const VerboseEnvVarName = "VERBOSE"

// StudioRegistryKey is the registry subkey under HKEY_CURRENT_USER holding the Studio install record
const StudioRegistryKey = `Software\Roblox\RobloxStudio`

// StudioContentFolderValueName is the value under StudioRegistryKey pointing at the content dir of the install
const StudioContentFolderValueName = "ContentFolder"

// PlayerRegistryKey is the registry subkey under HKEY_CURRENT_USER holding the Player environment record
const PlayerRegistryKey = `Software\ROBLOX Corporation\Environments\roblox-player`

// PlayerClientExeValueName is the value under PlayerRegistryKey pointing at the Player executable
const PlayerClientExeValueName = "clientExe"

// StudioWindowsBinaryName is the file name of the Studio executable inside a Windows install dir
const StudioWindowsBinaryName = "RobloxStudioBeta.exe"

// StudioMacBundlePath is the fixed path of the Studio application bundle on macOS
const StudioMacBundlePath = "/Applications/RobloxStudio.app"

// VersionsDirName is the directory under a Windows install root holding one subdirectory per installed build
const VersionsDirName = "Versions"

// ContentDirName is the content directory inside an install dir
const ContentDirName = "content"

// BuiltInPluginsDirName is the directory inside an install dir shipping Roblox's first party plugins
const BuiltInPluginsDirName = "BuiltInPlugins"

// OutputFormatConfigKey is the config key for storing the default output format of the CLI
const OutputFormatConfigKey = "output.format"
