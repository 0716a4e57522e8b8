package catalog

// Built-in move tables, keyed by game. Weights within a character sum
// to at most 1; the residual mass falls through to a random basic
// action at sampling time.
var builtin = map[string]map[string][]Move{
	"sfiii": sfiii,
}

var sfiii = map[string][]Move{
	"Alex": {
		{Name: "power_bomb", Prob: 0.15, Recipe: "comb_hc_p"},
		{Name: "spiral_ddt", Prob: 0.15, Recipe: "comb_hc_k"},
		{Name: "flash_chop", Prob: 0.15, Recipe: "comb_qc_p"},
		{Name: "air_knee_smash", Prob: 0.15, Recipe: "comb_dp_k"},
		{Name: "air_stampede", Prob: 0.15, Recipe: "hold_d_16_64_k"},
		{Name: "slash_elbow", Prob: 0.15, Recipe: "hold_lr_16_64_k"},
		{Name: SuperArtMove, Prob: 0.1, SuperArts: []string{"comb_fc_mp", "comb_2qc_mp", "comb_2qc_mp"}},
	},
	"Twelve": {
		{Name: "ndl", Prob: 0.3, Recipe: "comb_qc_p"},
		{Name: "axe", Prob: 0.3, Recipe: "comb_qc_p/rep_p_3_12_t"},
		{Name: "dra", Prob: 0.3, Recipe: "comb_qc_k"},
		{Name: SuperArtMove, Prob: 0.1, SuperArts: []string{"comb_2qc_mp", "comb_2qc_mk", "comb_2qc_mp"}},
	},
	"Hugo": {
		{Name: "shootdown_backbreaker", Prob: 0.15, Recipe: "comb_dp_k"},
		{Name: "ultra_throw", Prob: 0.15, Recipe: "comb_hc_k"},
		{Name: "moonsault_press", Prob: 0.15, Recipe: "comb_fc_p"},
		{Name: "meat_squasher", Prob: 0.15, Recipe: "comb_fc_k"},
		{Name: "giant_palm_bomber", Prob: 0.15, Recipe: "comb_qc_p"},
		{Name: "monster_lariat", Prob: 0.15, Recipe: "comb_qc_k"},
		{Name: SuperArtMove, Prob: 0.1, SuperArts: []string{"comb_2fc_mp", "comb_2qc_mk", "comb_2qc_mp/rep_mp_0_8_"}},
	},
	"Sean": {
		{Name: "zenten", Prob: 0.18, Recipe: "comb_qc_p"},
		{Name: "sean_tackle", Prob: 0.18, Recipe: "comb_hc_p/rep_p_0_8_"},
		{Name: "dragon_smash", Prob: 0.18, Recipe: "comb_dp_p"},
		{Name: "tornado_ryuubi_kyaku", Prob: 0.36, Recipe: "comb_qc_k"},
		{Name: SuperArtMove, Prob: 0.1, SuperArts: []string{"comb_2qc_mp", "comb_2qc_mp/rep_mp_0_12_t", "comb_2qc_mp"}},
	},
	"Makoto": {
		{Name: "karakusa", Prob: 0.18, Recipe: "comb_hc_k"},
		{Name: "hayate_oroshi", Prob: 0.36, Recipe: "comb_qc_p/rep_p_0_8_"},
		{Name: "fukiage", Prob: 0.18, Recipe: "comb_dp_p"},
		{Name: "tsurugi", Prob: 0.18, Recipe: "comb_qc_k"},
		{Name: SuperArtMove, Prob: 0.1, SuperArts: []string{"comb_2qc_mp", "comb_2qc_mk", "comb_2qc_mp"}},
	},
	"Elena": {
		{Name: "rhino_horn", Prob: 0.18, Recipe: "comb_hc_k"},
		{Name: "mallet_smash", Prob: 0.18, Recipe: "comb_hc_p"},
		{Name: "spin_scythe", Prob: 0.18, Recipe: "comb_qc_k"},
		{Name: "scratch_wheel_lynx_tail", Prob: 0.36, Recipe: "comb_dp_k"},
		{Name: SuperArtMove, Prob: 0.1, SuperArts: []string{"comb_2qc_mk", "comb_2qc_mk", "comb_2qc_mp"}},
	},
	"Ibuki": {
		{Name: "raida", Prob: 0.18, Recipe: "comb_hc_p"},
		{Name: "kasumi_gake_tsumuji", Prob: 0.18, Recipe: "comb_qc_k"},
		{Name: "tsuji_goe", Prob: 0.18, Recipe: "comb_dp_p"},
		{Name: "kunai_kubi_ori", Prob: 0.18, Recipe: "comb_qc_p"},
		{Name: "kazekiri_hien", Prob: 0.18, Recipe: "comb_dp_k"},
		{Name: SuperArtMove, Prob: 0.1, SuperArts: []string{"comb_2qc_mp/rep_mp_0_16_t", "comb_2qc_mp", "comb_2qc_mp"}},
	},
	"Chun-Li": {
		{Name: "kikoken", Prob: 0.18, Recipe: "comb_hc_p"},
		{Name: "hazanshu", Prob: 0.18, Recipe: "comb_hc_k"},
		{Name: "spinning_bird_kick", Prob: 0.18, Recipe: "hold_d_16_64_k"},
		{Name: "hyakuretsu_kyaku", Prob: 0.18, Recipe: "rep_k_3_16_t"},
		{Name: SuperArtMove, Prob: 0.1, SuperArts: []string{"comb_2qc_mp", "comb_2qc_mk", "comb_2qc_mk"}},
	},
	"Dudley": {
		{Name: "ducking_straight_short_swing_blow", Prob: 0.3, Recipe: "comb_hc_k/rep_p_0_4_t"},
		{Name: "ducking_upper_short_swing_blow", Prob: 0.3, Recipe: "comb_hc_k/rep_k_0_4_t"},
		{Name: "machine_gun_blow_cross_counter", Prob: 0.3, Recipe: "comb_hc_p"},
		{Name: "jet_upper", Prob: 0.18, Recipe: "comb_dp_p"},
		{Name: SuperArtMove, Prob: 0.1, SuperArts: []string{"comb_2qc_mp", "comb_2qc_mp/rep_mp_3_12_t", "comb_2qc_mp"}},
	},
	"Necro": {
		{Name: "snake_fang_rising_cobra", Prob: 0.18, Recipe: "comb_hc_k"},
		{Name: "denji_blast", Prob: 0.18, Recipe: "comb_dp_p/rep_p_0_12_t"},
		{Name: "flying_viper", Prob: 0.18, Recipe: "comb_qc_p"},
		{Name: "rising_kobra", Prob: 0.18, Recipe: "comb_qc_k"},
		{Name: "tornado_hook", Prob: 0.18, Recipe: "comb_hc_p"},
		{Name: SuperArtMove, Prob: 0.1, SuperArts: []string{"comb_2qc_mp/rep_mp_0_16_t", "comb_2qc_mp", "comb_2qc_mp"}},
	},
	"Q": {
		{Name: "capture_deadly_blow", Prob: 0.225, Recipe: "comb_hc_k"},
		{Name: "dashing_head", Prob: 0.225, Recipe: "hold_lr_16_64_p/rep_p_0_8_"},
		{Name: "dashing_leg", Prob: 0.225, Recipe: "hold_lr_16_64_k"},
		{Name: "high_speed_barage", Prob: 0.225, Recipe: "comb_qc_p"},
		{Name: SuperArtMove, Prob: 0.1, SuperArts: []string{"comb_2qc_mp", "comb_2qc_mp", "comb_2qc_mp"}},
	},
	"Oro": {
		{Name: "niu_riki", Prob: 0.225, Recipe: "comb_hc_p"},
		{Name: "nichirin_shou", Prob: 0.225, Recipe: "hold_lr_16_64_p"},
		{Name: "oni_yanma", Prob: 0.225, Recipe: "hold_d_16_64_p"},
		{Name: "jinchuu_watari_hitobashira_nobori", Prob: 0.225, Recipe: "comb_qc_k"},
		{Name: SuperArtMove, Prob: 0.1, SuperArts: []string{"comb_2qc_mp/hold_lr_4_24_p", "comb_2qc_mp", "comb_2qc_mp"}},
	},
	"Urien": {
		{Name: "metallic_sphere", Prob: 0.225, Recipe: "comb_qc_p/rep_p_0_12_"},
		{Name: "chariot_tackle", Prob: 0.225, Recipe: "hold_lr_16_64_k"},
		{Name: "dangerous_headbutt", Prob: 0.225, Recipe: "hold_d_16_64_p"},
		{Name: "violence_knee_drop", Prob: 0.225, Recipe: "hold_d_16_64_k"},
		{Name: SuperArtMove, Prob: 0.1, SuperArts: []string{"comb_2qc_mp", "comb_2qc_mp", "comb_2qc_mp"}},
	},
	"Remy": {
		{Name: "light_of_virtue", Prob: 0.225, Recipe: "hold_lr_16_64_p"},
		{Name: "light_of_virtue_low", Prob: 0.225, Recipe: "hold_lr_16_64_k"},
		{Name: "rising_rage_flash", Prob: 0.225, Recipe: "hold_d_16_128_k"},
		{Name: "cold_blue_kick", Prob: 0.225, Recipe: "comb_qc_k"},
		{Name: SuperArtMove, Prob: 0.1, SuperArts: []string{"comb_2qc_mp", "comb_2qc_mk", "comb_2qc_mk"}},
	},
	"Ryu": {
		{Name: "hadouken", Prob: 0.225, Recipe: "comb_qc_p"},
		{Name: "shoryuken", Prob: 0.225, Recipe: "comb_dp_p"},
		{Name: "tatsumaki_senpukyaku", Prob: 0.225, Recipe: "comb_qc_k"},
		{Name: "joudan_sokutou_geri", Prob: 0.225, Recipe: "comb_hc_k"},
		{Name: SuperArtMove, Prob: 0.1, SuperArts: []string{"comb_2qc_mp", "comb_2qc_mp", "comb_2qc_mp/rep_mp_0_16_"}},
	},
	"Gouki": {
		{Name: "go_zankuu_hadouken", Prob: 0.15, Recipe: "comb_qc_p"},
		{Name: "shakenutsu_hadouken", Prob: 0.15, Recipe: "comb_hc_p"},
		{Name: "go_shoryuken", Prob: 0.15, Recipe: "comb_dp_p"},
		{Name: "tatsumaki_senpukyaku", Prob: 0.15, Recipe: "comb_qc_k"},
		{Name: "hyakkishu_go", Prob: 0.075, Recipe: "comb_dp_k/rep_p_0_2_t"},
		{Name: "hyakkishu_sho", Prob: 0.075, Recipe: "comb_dp_k/rep_k_0_2_t"},
		{Name: "hyakkishu_sho_sai", Prob: 0.075, Recipe: "comb_dp_k/rep_mpk_0_2_t"},
		{Name: "shun_goku_satsu", Prob: 0.055, Recipe: "raw_+lp_+_+lp/comb_lr_/raw_+lk_+_+hp"},
		{Name: "target_combo_1", Prob: 0.02, Recipe: "rep_mp_5_5_t/raw_+/rep_hp_5_5_t"},
		{Name: SuperArtMove, Prob: 0.1, SuperArts: []string{"comb_2qc_mp", "comb_2qc_mp", "comb_2qc_mk"}},
	},
	"Yun": {
		{Name: "zenpou_tenshin", Prob: 0.225, Recipe: "comb_hc_k"},
		{Name: "kobokushi_zesshou_hohou", Prob: 0.225, Recipe: "comb_qc_p"},
		{Name: "tetsuzanko", Prob: 0.225, Recipe: "comb_dp_p"},
		{Name: "nishoukyaku", Prob: 0.225, Recipe: "comb_dp_k"},
		{Name: SuperArtMove, Prob: 0.1, SuperArts: []string{"comb_2qc_mp", "comb_2qc_mp", "comb_2qc_mk"}},
	},
	"Yang": {
		{Name: "tourou_zan_byakko_soushouda", Prob: 0.225, Recipe: "comb_qc_p"},
		{Name: "senkyuutai", Prob: 0.225, Recipe: "comb_qc_k"},
		{Name: "zenpou_tenshin", Prob: 0.225, Recipe: "comb_hc_k"},
		{Name: "kaihou", Prob: 0.225, Recipe: "comb_dp_k"},
		{Name: SuperArtMove, Prob: 0.1, SuperArts: []string{"comb_2qc_mp", "comb_2qc_mk", "comb_2qc_mp"}},
	},
	"Ken": {
		{Name: "hadouken", Prob: 0.225, Recipe: "comb_qc_p"},
		{Name: "shoryuken", Prob: 0.225, Recipe: "comb_dp_p"},
		{Name: "tatsumaki_senpukyaku", Prob: 0.225, Recipe: "comb_qc_k"},
		{Name: "grab", Prob: 0.225, Recipe: "rep_lpk_1_8_t"},
		{Name: SuperArtMove, Prob: 0.1, SuperArts: []string{"comb_2qc_mp", "comb_2qc_mk/rep_mk_0_16_t", "comb_2qc_mk"}},
	},
}
