package launchermeta

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trimmed from the 23w45a snapshot manifest
const versionFixture = `{
	"arguments": {
		"game": [
			"--username", "${auth_player_name}",
			"--version", "${version_name}",
			"--gameDir", "${game_directory}",
			{"rules": [{"action": "allow", "features": {"is_demo_user": true}}], "value": "--demo"},
			{"rules": [{"action": "allow", "features": {"has_custom_resolution": true}}],
			 "value": ["--width", "${resolution_width}", "--height", "${resolution_height}"]}
		],
		"jvm": [
			{"rules": [{"action": "allow", "os": {"name": "osx"}}], "value": ["-XstartOnFirstThread"]},
			{"rules": [{"action": "allow", "os": {"name": "windows"}}],
			 "value": "-XX:HeapDumpPath=MojangTricksIntelDriversForPerformance_javaw.exe_minecraft.exe.heapdump"},
			{"rules": [{"action": "allow", "os": {"arch": "x86"}}], "value": "-Xss1M"},
			"-Djava.library.path=${natives_directory}",
			"-cp", "${classpath}"
		]
	},
	"assetIndex": {
		"id": "11",
		"sha1": "1e62f8db74422c8ceec551b5cbf98414d34c24b3",
		"size": 426900,
		"totalSize": 623629518,
		"url": "https://piston-meta.mojang.com/v1/packages/1e62f8db74422c8ceec551b5cbf98414d34c24b3/11.json"
	},
	"assets": "11",
	"complianceLevel": 1,
	"downloads": {
		"client": {
			"sha1": "265ca2072f7c3a9e0dae8c4abe223431089d9980",
			"size": 24339738,
			"url": "https://piston-data.mojang.com/v1/objects/265ca2072f7c3a9e0dae8c4abe223431089d9980/client.jar"
		},
		"client_mappings": {
			"sha1": "15bd31430e6903a34c68950d9443026f991a143e",
			"size": 8835386,
			"url": "https://piston-data.mojang.com/v1/objects/15bd31430e6903a34c68950d9443026f991a143e/client.txt"
		},
		"server": {
			"sha1": "9c2b37701bf77ae22df4c32fd6dd1614049ce994",
			"size": 49093592,
			"url": "https://piston-data.mojang.com/v1/objects/9c2b37701bf77ae22df4c32fd6dd1614049ce994/server.jar"
		}
	},
	"id": "23w45a",
	"javaVersion": {"component": "java-runtime-gamma", "majorVersion": 17},
	"libraries": [
		{
			"downloads": {
				"artifact": {
					"path": "ca/weblite/java-objc-bridge/1.1/java-objc-bridge-1.1.jar",
					"sha1": "1227f9e0666314f9de41477e3ec277e542ed7f7b",
					"size": 1330045,
					"url": "https://libraries.minecraft.net/ca/weblite/java-objc-bridge/1.1/java-objc-bridge-1.1.jar"
				}
			},
			"name": "ca.weblite:java-objc-bridge:1.1",
			"rules": [{"action": "allow", "os": {"name": "osx"}}]
		},
		{
			"downloads": {
				"artifact": {
					"path": "org/joml/joml/1.10.5/joml-1.10.5.jar",
					"sha1": "22566d58af70ad3d72308bab63b8339906deb649",
					"size": 712082,
					"url": "https://libraries.minecraft.net/org/joml/joml/1.10.5/joml-1.10.5.jar"
				}
			},
			"name": "org.joml:joml:1.10.5"
		},
		{
			"downloads": {
				"artifact": {
					"path": "io/netty/netty-transport-native-epoll/4.1.97.Final/netty-transport-native-epoll-4.1.97.Final-linux-x86_64.jar",
					"sha1": "54188f271e388e7f313aea995e82f58ce2cdb809",
					"size": 38954,
					"url": "https://libraries.minecraft.net/io/netty/netty-transport-native-epoll/4.1.97.Final/netty-transport-native-epoll-4.1.97.Final-linux-x86_64.jar"
				}
			},
			"name": "io.netty:netty-transport-native-epoll:4.1.97.Final:linux-x86_64",
			"rules": [{"action": "allow", "os": {"name": "linux"}}]
		}
	],
	"logging": {
		"client": {
			"argument": "-Dlog4j.configurationFile=${path}",
			"file": {
				"id": "client-1.12.xml",
				"sha1": "bd65e7d2e3c237be76cfbef4c2405033d7f91521",
				"size": 888,
				"url": "https://piston-data.mojang.com/v1/objects/bd65e7d2e3c237be76cfbef4c2405033d7f91521/client-1.12.xml"
			},
			"type": "log4j2-xml"
		}
	},
	"mainClass": "net.minecraft.client.main.Main",
	"minimumLauncherVersion": 21,
	"releaseTime": "2023-11-08T13:59:58+00:00",
	"time": "2023-11-08T13:59:58+00:00",
	"type": "snapshot"
}`

func TestParseVersion(t *testing.T) {
	ver, err := ParseVersion([]byte(versionFixture))
	require.NoError(t, err)

	assert.Equal(t, "23w45a", ver.ID)
	assert.Equal(t, KindSnapshot, ver.Kind)
	assert.Equal(t, "net.minecraft.client.main.Main", ver.MainClass)
	assert.Equal(t, uint64(21), ver.MinimumLauncherVersion)
	require.NotNil(t, ver.ComplianceLevel)
	assert.Equal(t, uint64(1), *ver.ComplianceLevel)
	assert.Nil(t, ver.MinecraftArguments)

	assert.Equal(t, uint64(623629518), ver.AssetIndex.TotalSize)
	assert.Equal(t, uint64(24339738), ver.Downloads.Client.Size)
	require.NotNil(t, ver.Downloads.ClientMappings)
	require.NotNil(t, ver.Downloads.Server)
	assert.Nil(t, ver.Downloads.WindowsServer)

	require.NotNil(t, ver.JavaVersion)
	assert.Equal(t, "java-runtime-gamma", ver.JavaVersion.Component)
	assert.Equal(t, uint64(17), ver.JavaVersion.MajorVersion)

	require.NotNil(t, ver.Arguments)
	assert.Len(t, ver.Arguments.Game, 8)
	assert.Len(t, ver.Arguments.JVM, 6)
	assert.Len(t, ver.Libraries, 3)

	require.NotNil(t, ver.Logging)
	require.NotNil(t, ver.Logging.Client)
	assert.Equal(t, "log4j2-xml", ver.Logging.Client.Kind)
	assert.Equal(t, "client-1.12.xml", ver.Logging.Client.File.ID)
}

func TestParseVersionUnknownTopLevelKey(t *testing.T) {
	raw := strings.Replace(versionFixture, `"assets": "11",`, `"assets": "11", "downloadsExtra": {},`, 1)
	ver, err := ParseVersion([]byte(raw))
	assert.Nil(t, ver)
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.ErrorContains(t, err, "downloadsExtra")
}

func TestParseVersionMissingRequiredField(t *testing.T) {
	raw := strings.Replace(versionFixture, `"mainClass": "net.minecraft.client.main.Main",`, ``, 1)
	_, err := ParseVersion([]byte(raw))
	assert.ErrorIs(t, err, ErrMissingField)
	assert.ErrorContains(t, err, "mainClass")
}

func TestParseVersionDuplicateKey(t *testing.T) {
	raw := strings.Replace(versionFixture, `"assets": "11",`, `"assets": "11", "assets": "11",`, 1)
	_, err := ParseVersion([]byte(raw))
	assert.ErrorIs(t, err, ErrDuplicateField)
}

func TestParseVersionInvalidKind(t *testing.T) {
	raw := strings.Replace(versionFixture, `"type": "snapshot"`, `"type": "beta"`, 1)
	_, err := ParseVersion([]byte(raw))
	assert.ErrorIs(t, err, ErrInvalidEnumValue)
}

func TestParseVersionMalformed(t *testing.T) {
	_, err := ParseVersion([]byte(`{"id": `))
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestParseVersionNotAnObject(t *testing.T) {
	_, err := ParseVersion([]byte(`[1, 2, 3]`))
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestParseVersionLegacyArguments(t *testing.T) {
	raw := `{
		"minecraftArguments": "--username ${auth_player_name} --version ${version_name}",
		"assetIndex": {"id": "legacy", "sha1": "a", "size": 1, "totalSize": 2, "url": "u"},
		"assets": "legacy",
		"downloads": {"client": {"sha1": "b", "size": 3, "url": "u"}},
		"id": "1.6.4",
		"libraries": [],
		"mainClass": "net.minecraft.launchwrapper.Launch",
		"minimumLauncherVersion": 13,
		"releaseTime": "2013-09-19T15:52:37+00:00",
		"time": "2013-09-19T15:52:37+00:00",
		"type": "release"
	}`
	ver, err := ParseVersion([]byte(raw))
	require.NoError(t, err)
	assert.Nil(t, ver.Arguments)
	require.NotNil(t, ver.MinecraftArguments)
	// the blob is preserved verbatim, tokenization is the launcher's problem
	assert.Equal(t, "--username ${auth_player_name} --version ${version_name}", *ver.MinecraftArguments)
	assert.Nil(t, ver.GameArgs(linuxCtx()))
}

func TestVersionRoundTrip(t *testing.T) {
	ver, err := ParseVersion([]byte(versionFixture))
	require.NoError(t, err)

	encoded, err := json.Marshal(ver)
	require.NoError(t, err)

	again, err := ParseVersion(encoded)
	require.NoError(t, err)
	assert.Equal(t, ver, again)
}
