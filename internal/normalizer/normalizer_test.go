package normalizer

import "testing"

func TestNormalizeRealWorldFilenames(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{
			name:     "version tail",
			filename: "JEI-1.16.5-7.7.1.152.jar",
			want:     "jei.jar",
		},
		{
			name:     "translated annotation and loader tail",
			filename: "[更好的钓鱼]BetterFishing-forge-1.20.1-2.0.0.jar",
			want:     "betterfishing.jar",
		},
		{
			name:     "mc version and plus-separated build metadata",
			filename: "AppleSkin-mc1.18-forge-2.4.0+mc1.18.jar",
			want:     "appleskin.jar",
		},
		{
			name:     "leading minecraft version",
			filename: "1.12.2-JourneyMap-5.7.1.jar",
			want:     "journeymap.jar",
		},
		{
			name:     "for-loader phrase",
			filename: "Sodium for Fabric 0.5.3.jar",
			want:     "sodium.jar",
		},
		{
			name:     "annotation with middle dot and glued loader version",
			filename: "[我的世界·Iron Chests]ironchests-forge1.20.1-14.4.4.jar",
			want:     "ironchests.jar",
		},
		{
			name:     "translated prefix without brackets",
			filename: "机械动力Create-1.20.1.jar",
			want:     "create.jar",
		},
		{
			name:     "middle dot between translated and ascii name",
			filename: "中文名·Sodium.jar",
			want:     "sodium.jar",
		},
		{
			name:     "purely non-ascii stem is preserved",
			filename: "中文模组.jar",
			want:     "中文模组.jar",
		},
		{
			name:     "non-ascii stem with pure version tail",
			filename: "中文-1.2.jar",
			want:     "中文.jar",
		},
		{
			name:     "plus separator before loader",
			filename: "Iris+Fabric-1.6.4.jar",
			want:     "iris.jar",
		},
		{
			name:     "v-prefixed version",
			filename: "Mod-v2.jar",
			want:     "mod.jar",
		},
		{
			name:     "release stage tail",
			filename: "Something-beta.jar",
			want:     "something.jar",
		},
		{
			name:     "snapshot in version metadata",
			filename: "mod-1.0.0-SNAPSHOT.jar",
			want:     "mod.jar",
		},
		{
			name:     "universal tail",
			filename: "Backpacks-1.19.2-forge-universal.jar",
			want:     "backpacks.jar",
		},
		{
			name:     "internal space survives",
			filename: "Better Fishing 2.0.jar",
			want:     "better fishing.jar",
		},
		{
			name:     "stem that is only a loader name",
			filename: "forge-1.20.1.jar",
			want:     "forge.jar",
		},
		{
			name:     "no extension",
			filename: "README",
			want:     "readme",
		},
		{
			name:     "stem entirely bracketed",
			filename: "[只有中文].jar",
			want:     ".jar",
		},
		{
			name:     "already canonical",
			filename: "jei.jar",
			want:     "jei.jar",
		},
		{
			name:     "uppercase extension",
			filename: "JEI-7.7.1.JAR",
			want:     "jei.jar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.filename)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestNormalizeSplitsAtLastDot(t *testing.T) {
	// The extension is everything from the final dot, so a dotted stem
	// only loses what the suffix peel recognizes.
	got := Normalize("Mod.Name-1.0.jar")
	if got != "mod.name.jar" {
		t.Errorf("Normalize(%q) = %q, want %q", "Mod.Name-1.0.jar", got, "mod.name.jar")
	}
}

func TestNormalizeTrimsSeparatorEdges(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"-LeadingDash.jar", "leadingdash.jar"},
		{"_Underscored_.jar", "underscored.jar"},
		{"  Spaced  .jar", "spaced.jar"},
	}

	for _, tt := range tests {
		got := Normalize(tt.filename)
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}
